package dateutil

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNormalizeTruncatesTime(t *testing.T) {
	in := time.Date(2024, time.March, 10, 17, 45, 12, 99, time.Local)
	got := Normalize(in)
	if !got.Equal(day(2024, time.March, 10)) {
		t.Fatalf("Normalize = %v, want 2024-03-10 00:00", got)
	}
	if !Normalize(time.Time{}).IsZero() {
		t.Fatalf("Normalize(zero) should stay zero")
	}
}

func TestAddDaysCrossesMonthAndYear(t *testing.T) {
	tests := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{day(2024, time.March, 10), -9, day(2024, time.March, 1)},
		{day(2024, time.March, 1), -1, day(2024, time.February, 29)},
		{day(2023, time.December, 31), 1, day(2024, time.January, 1)},
		{day(2024, time.June, 15), -6, day(2024, time.June, 9)},
	}
	for _, tc := range tests {
		if got := AddDays(tc.in, tc.n); !got.Equal(tc.want) {
			t.Errorf("AddDays(%s, %d) = %s, want %s", tc.in.Format("2006-01-02"), tc.n, got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
		}
	}
}

func TestAddMonthsClampsToLastDay(t *testing.T) {
	tests := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{day(2024, time.January, 31), 1, day(2024, time.February, 29)},
		{day(2023, time.January, 31), 1, day(2023, time.February, 28)},
		{day(2024, time.March, 31), -1, day(2024, time.February, 29)},
		{day(2024, time.December, 15), 1, day(2025, time.January, 15)},
		{day(2024, time.January, 1), -1, day(2023, time.December, 1)},
		{day(2024, time.May, 31), 13, day(2025, time.June, 30)},
	}
	for _, tc := range tests {
		if got := AddMonths(tc.in, tc.n); !got.Equal(tc.want) {
			t.Errorf("AddMonths(%s, %d) = %s, want %s", tc.in.Format("2006-01-02"), tc.n, got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
		}
	}
}

func TestSameDayAndMonth(t *testing.T) {
	a := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.Local)
	b := time.Date(2024, time.March, 10, 23, 0, 0, 0, time.Local)
	if !IsSameDay(a, b) {
		t.Fatalf("expected same day")
	}
	if IsSameDay(a, day(2024, time.March, 11)) {
		t.Fatalf("expected different days")
	}
	if !IsSameMonth(a, day(2024, time.March, 31)) {
		t.Fatalf("expected same month")
	}
	if IsSameMonth(a, day(2023, time.March, 10)) {
		t.Fatalf("same month in different years must not match")
	}
}

func TestBuildMonthGrid(t *testing.T) {
	// March 2024 starts on a Friday.
	grid := BuildMonthGrid(day(2024, time.March, 17))
	if len(grid) != GridCells {
		t.Fatalf("len(grid) = %d, want %d", len(grid), GridCells)
	}
	for i := 0; i < 5; i++ {
		if !grid[i].IsZero() {
			t.Fatalf("cell %d = %v, want empty", i, grid[i])
		}
	}
	if !grid[5].Equal(day(2024, time.March, 1)) {
		t.Fatalf("cell 5 = %v, want 2024-03-01", grid[5])
	}
	if !grid[35].Equal(day(2024, time.March, 31)) {
		t.Fatalf("cell 35 = %v, want 2024-03-31", grid[35])
	}
	for i := 36; i < GridCells; i++ {
		if !grid[i].IsZero() {
			t.Fatalf("trailing cell %d = %v, want empty", i, grid[i])
		}
	}

	again := BuildMonthGrid(day(2024, time.March, 1))
	for i := range grid {
		if !grid[i].Equal(again[i]) {
			t.Fatalf("grid not deterministic at %d", i)
		}
	}
}

func TestBuildMonthGridSundayStart(t *testing.T) {
	// September 2024 starts on a Sunday.
	grid := BuildMonthGrid(day(2024, time.September, 1))
	if !grid[0].Equal(day(2024, time.September, 1)) {
		t.Fatalf("cell 0 = %v, want 2024-09-01", grid[0])
	}
	filled := 0
	for _, c := range grid {
		if !c.IsZero() {
			filled++
		}
	}
	if filled != 30 {
		t.Fatalf("filled = %d, want 30", filled)
	}
}

func TestYearOptions(t *testing.T) {
	got := YearOptions(2024, 2)
	want := []int{2022, 2023, 2024, 2025, 2026}
	if len(got) != len(want) {
		t.Fatalf("YearOptions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("YearOptions = %v, want %v", got, want)
		}
	}
	if got := YearOptions(2024, 0); len(got) != 1 || got[0] != 2024 {
		t.Fatalf("YearOptions(radius 0) = %v, want [2024]", got)
	}
}

func TestMonthLabels(t *testing.T) {
	if got := MonthName(0); got != "January" {
		t.Fatalf("MonthName(0) = %q", got)
	}
	if got := MonthName(12); got != "" {
		t.Fatalf("MonthName(12) = %q, want empty", got)
	}
	if got := MonthLabel(day(2024, time.March, 5)); got != "March 2024" {
		t.Fatalf("MonthLabel = %q, want %q", got, "March 2024")
	}
	if n := len(MonthNames()); n != 12 {
		t.Fatalf("len(MonthNames) = %d", n)
	}
}

func TestParseAndFormatDay(t *testing.T) {
	d, err := ParseDay("2006-01-02", " 2024-03-05 ", time.Local)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if !d.Equal(day(2024, time.March, 5)) {
		t.Fatalf("ParseDay = %v", d)
	}
	if _, err := ParseDay("2006-01-02", "05/03/2024", time.Local); err == nil {
		t.Fatalf("expected parse error")
	}
	if got := FormatDay("01/02/2006", d); got != "03/05/2024" {
		t.Fatalf("FormatDay = %q", got)
	}
	if got := FormatDay("01/02/2006", time.Time{}); got != "" {
		t.Fatalf("FormatDay(zero) = %q, want empty", got)
	}
}

func TestRangeStates(t *testing.T) {
	var empty Range
	if !empty.Empty() || empty.Complete() || empty.Selecting() {
		t.Fatalf("zero range should be empty only")
	}
	sel := Range{Start: day(2024, time.March, 5)}
	if !sel.Selecting() || sel.Complete() {
		t.Fatalf("start-only range should be selecting")
	}
	full := Range{Start: day(2024, time.March, 5), End: day(2024, time.March, 20)}
	if !full.Complete() || full.Selecting() {
		t.Fatalf("full range should be complete")
	}
	if got := full.Days(); got != 16 {
		t.Fatalf("Days = %d, want 16", got)
	}
	if got := (Range{Start: day(2024, time.March, 20), End: day(2024, time.March, 5)}).Days(); got != 16 {
		t.Fatalf("unsorted Days = %d, want 16", got)
	}
	if !full.Contains(time.Date(2024, time.March, 20, 22, 0, 0, 0, time.Local)) {
		t.Fatalf("range should contain its end day at any time of day")
	}
	if full.Contains(day(2024, time.March, 21)) {
		t.Fatalf("range should not contain the day after its end")
	}
}

func TestRangeBoundsUnsorted(t *testing.T) {
	r := Range{Start: day(2024, time.March, 20), End: day(2024, time.March, 5)}
	lo, hi := r.Bounds()
	if !lo.Equal(day(2024, time.March, 5)) || !hi.Equal(day(2024, time.March, 20)) {
		t.Fatalf("Bounds = %v..%v", lo, hi)
	}
	if !r.Contains(day(2024, time.March, 10)) {
		t.Fatalf("unsorted range should still contain inner days")
	}
}

func TestRangeEqual(t *testing.T) {
	a := Range{Start: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.Local)}
	b := Range{Start: day(2024, time.March, 5)}
	if !a.Equal(b) {
		t.Fatalf("ranges equal by day should match")
	}
	b.End = day(2024, time.March, 6)
	if a.Equal(b) {
		t.Fatalf("absent end must not match a present one")
	}
}

func TestRangeDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	tests := []struct {
		name string
		r    Range
		want int
	}{
		{"single day", Range{Start: day(2024, time.June, 1), End: day(2024, time.June, 1)}, 1},
		{"leap february", Range{Start: day(2024, time.February, 1), End: day(2024, time.March, 1)}, 30},
		{"spring forward", Range{
			Start: time.Date(2024, time.March, 9, 0, 0, 0, 0, ny),
			End:   time.Date(2024, time.March, 11, 0, 0, 0, 0, ny),
		}, 3},
		{"fall back", Range{
			Start: time.Date(2024, time.November, 2, 0, 0, 0, 0, ny),
			End:   time.Date(2024, time.November, 4, 23, 0, 0, 0, ny),
		}, 3},
		{"whole calendar", Range{
			Start: time.Date(1, time.January, 2, 0, 0, 0, 0, time.UTC),
			End:   time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC),
		}, 3652058},
		{"incomplete", Range{Start: day(2024, time.June, 1)}, 0},
	}
	for _, tt := range tests {
		if got := tt.r.Days(); got != tt.want {
			t.Fatalf("%s: Days = %d, want %d", tt.name, got, tt.want)
		}
	}
}
