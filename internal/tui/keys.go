package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Scopes select which bindings apply. A binding with no scopes applies everywhere.
const (
	scopeOpen   = "picker:open"
	scopeClosed = "picker:closed"
)

const (
	actionQuit        = "quit"
	actionOpen        = "open"
	actionOpenStart   = "open_start"
	actionOpenEnd     = "open_end"
	actionClose       = "close"
	actionPick        = "pick"
	actionLeft        = "left"
	actionRight       = "right"
	actionUp          = "up"
	actionDown        = "down"
	actionSwitchSide  = "switch_side"
	actionPrevTop     = "prev_top"
	actionNextTop     = "next_top"
	actionPrevBottom  = "prev_bottom"
	actionNextBottom  = "next_bottom"
	actionClear       = "clear"
	actionPresetFirst = "preset"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// DefaultKeyRegistry returns the picker bindings.
func DefaultKeyRegistry() *KeyRegistry {
	open := []string{scopeOpen}
	closed := []string{scopeClosed}
	return NewKeyRegistry([]KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit"},
		{Keys: []string{"o", "enter"}, Action: actionOpen, Description: "open", Scopes: closed},
		{Keys: []string{"s"}, Action: actionOpenStart, Description: "edit start"},
		{Keys: []string{"e"}, Action: actionOpenEnd, Description: "edit end"},
		{Keys: []string{"esc"}, Action: actionClose, Description: "close", Scopes: open},
		{Keys: []string{"enter", " "}, Action: actionPick, Description: "pick", Scopes: open},
		{Keys: []string{"left", "h"}, Action: actionLeft, Description: "day -1", Scopes: open},
		{Keys: []string{"right", "l"}, Action: actionRight, Description: "day +1", Scopes: open},
		{Keys: []string{"up", "k"}, Action: actionUp, Description: "week -1", Scopes: open},
		{Keys: []string{"down", "j"}, Action: actionDown, Description: "week +1", Scopes: open},
		{Keys: []string{"tab"}, Action: actionSwitchSide, Description: "other month", Scopes: open},
		{Keys: []string{"["}, Action: actionPrevTop, Description: "top -1m", Scopes: open},
		{Keys: []string{"]"}, Action: actionNextTop, Description: "top +1m", Scopes: open},
		{Keys: []string{"{"}, Action: actionPrevBottom, Description: "bottom -1m", Scopes: open},
		{Keys: []string{"}"}, Action: actionNextBottom, Description: "bottom +1m", Scopes: open},
		{Keys: []string{"c"}, Action: actionClear, Description: "clear"},
		{Keys: []string{"1", "2", "3", "4", "5", "6"}, Action: actionPresetFirst, Description: "preset"},
	})
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// Action returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	for _, b := range r.bindings {
		if r.IsAction(msg, b.Action, scope) {
			return b.Action
		}
	}
	return ""
}

func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
