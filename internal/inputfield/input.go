// Package inputfield normalizes live-typing numeric fields: it reformats
// the text through the shorthand parser while keeping the caret anchored to
// the digit the user was editing, despite grouping commas shifting offsets.
// It is a pure text-editing layer; business rules live elsewhere.
package inputfield

import (
	"fmt"
	"strings"

	"github.com/YoshiBoneDoc/kolauction/internal/numeric"
)

// ErrInvalidInput is the user-facing message for text the parser rejects.
const ErrInvalidInput = "Invalid input. Use digits optionally followed by k, m, or b."

// State is the transient per-field editing state owned by the UI layer.
type State struct {
	Text  string // formatted display text
	Value int64  // equivalent numeric value
	Caret int    // caret offset into Text
}

// Result reports whether a keystroke was accepted. Err is user-visible
// text; nothing here is ever thrown.
type Result struct {
	Valid bool
	Err   string
}

// Processor applies keystrokes for one field. Ceiling is the field's
// domain-specific maximum (5 billion for quantities, 10 or 20 billion for
// bids); a keystroke that would exceed it is rejected outright rather than
// clamped, unlike the parser's own global clamp.
type Processor struct {
	Ceiling int64
}

// Apply takes the previous field state plus the raw text and caret after a
// keystroke, and returns the next state. On rejection the previous state is
// returned unchanged so the field keeps its last valid value.
func (p Processor) Apply(prev State, raw string, caret int) (State, Result) {
	if raw == "" {
		return State{}, Result{Valid: true}
	}

	// Backspacing: when the keystroke removed content, reformatting would
	// fight the caret, so accept the raw text verbatim for this keystroke.
	newSanitized, ok := numeric.Sanitize(raw)
	if ok {
		oldSanitized, _ := numeric.Sanitize(prev.Text)
		if len(newSanitized) < len(oldSanitized) {
			v, _ := numeric.ParseAmount(raw)
			return State{Text: raw, Value: v, Caret: caret}, Result{Valid: true}
		}
	}

	v, ok := numeric.ParseAmount(raw)
	if !ok {
		return prev, Result{Valid: false, Err: ErrInvalidInput}
	}
	if p.Ceiling > 0 && v > p.Ceiling {
		return prev, Result{
			Valid: false,
			Err:   fmt.Sprintf("Value cannot exceed %s.", numeric.Format(p.Ceiling)),
		}
	}

	formatted := numeric.Format(v)
	next := State{Text: formatted, Value: v}
	if endsWithUnit(raw) {
		// A shorthand suffix rewrites the whole value; anchoring to a digit
		// makes no sense, so the caret jumps to the end.
		next.Caret = len(formatted)
	} else {
		next.Caret = Recaret(raw, caret, formatted)
	}
	return next, Result{Valid: true}
}

// Recaret maps a caret offset from oldText to newText by counting the
// digits strictly before the old caret and placing the new caret right
// after the same digit count in newText. Independent of any UI toolkit.
func Recaret(oldText string, oldCaret int, newText string) int {
	if oldCaret > len(oldText) {
		oldCaret = len(oldText)
	}
	if oldCaret < 0 {
		oldCaret = 0
	}

	digitsBefore := 0
	for _, r := range oldText[:oldCaret] {
		if r >= '0' && r <= '9' {
			digitsBefore++
		}
	}
	if digitsBefore == 0 {
		return 0
	}

	seen := 0
	for i, r := range newText {
		if r >= '0' && r <= '9' {
			seen++
		}
		if seen == digitsBefore {
			return i + 1
		}
	}
	return len(newText)
}

func endsWithUnit(raw string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case 'k', 'm', 'b':
		return true
	}
	return false
}
