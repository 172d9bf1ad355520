package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates keyboard actions
type IntentType uint8

const (
	IntentNone       IntentType = iota
	IntentQuit                  // Esc, Ctrl+C, q
	IntentToggleMute            // m
	IntentRecenter              // r, same as a resize when idle
)

// KeyIntent maps a key press to an intent
func KeyIntent(ev *tcell.EventKey) IntentType {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return IntentQuit
		case 'm', 'M':
			return IntentToggleMute
		case 'r', 'R':
			return IntentRecenter
		}
	}
	return IntentNone
}
