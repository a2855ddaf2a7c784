package testdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jask/rangepicker/internal/dateutil"
	"github.com/jask/rangepicker/internal/database/repository"
)

var descriptions = []string{"UBER EATS* SUSHI", "AMAZON.COM*XYZ", "WOOLWORTHS", "SPOTIFY", "SALARY ACME", "SHELL COLES EXPRESS"}

// Generate creates a sample ledger for the days ending at today. The same
// seed always yields the same entries, IDs included.
func Generate(today time.Time, days int, seed int64) []repository.Entry {
	rnd := rand.New(rand.NewSource(seed))
	end := dateutil.Normalize(today)

	var out []repository.Entry
	for i := 0; i < days; i++ {
		d := dateutil.AddDays(end, -i)
		for n := rnd.Intn(3); n > 0; n-- {
			desc := descriptions[rnd.Intn(len(descriptions))]
			amount := -int64(rnd.Intn(20000) + 500)
			if desc == "SALARY ACME" {
				amount = int64(rnd.Intn(50000) + 150000)
			}
			key := fmt.Sprintf("entry:%d:%s:%d", seed, d.Format(repository.DayLayout), n)
			out = append(out, repository.Entry{
				ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String(),
				Date:        d,
				AmountCents: amount,
				Description: desc,
			})
		}
	}
	return out
}
