// Package keymap matches terminal key events against the named binds of
// config.KeybindsConfig. Each bind is a set of key events; any element of
// the set matching an incoming event triggers the bind. Grounded on the
// teacher's internal/keymap bindings table (one Binding per key+command
// pair), generalized here to a many-keys-per-command set since jnv-go has
// a single flat binding namespace rather than per-plugin contexts.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jnv/internal/config"
)

// Bind names a single keybind.
type Bind int

const (
	MoveToTail Bind = iota
	MoveToHead
	Backward
	Forward
	Completion
	MoveToPreviousNearest
	MoveToNextNearest
	Erase
	EraseAll
	EraseToPreviousNearest
	EraseToNextNearest
	SearchUp
	SearchDown
)

// Keymap is a read-only lookup from key event string to the set of binds
// it triggers (a single key can appear in more than one bind's set, though
// that is a configuration error callers may want to flag upstream).
type Keymap struct {
	sets map[Bind][]string
}

// New builds a Keymap from the configured bind sets.
func New(cfg config.KeybindsConfig) *Keymap {
	return &Keymap{
		sets: map[Bind][]string{
			MoveToTail:             cfg.MoveToTail,
			MoveToHead:             cfg.MoveToHead,
			Backward:               cfg.Backward,
			Forward:                cfg.Forward,
			Completion:             cfg.Completion,
			MoveToPreviousNearest:  cfg.MoveToPreviousNearest,
			MoveToNextNearest:      cfg.MoveToNextNearest,
			Erase:                  cfg.Erase,
			EraseAll:               cfg.EraseAll,
			EraseToPreviousNearest: cfg.EraseToPreviousNearest,
			EraseToNextNearest:     cfg.EraseToNextNearest,
			SearchUp:               cfg.SearchUp,
			SearchDown:             cfg.SearchDown,
		},
	}
}

// Matches reports whether msg triggers bind b.
func (k *Keymap) Matches(b Bind, msg tea.KeyMsg) bool {
	s := msg.String()
	for _, candidate := range k.sets[b] {
		if candidate == s {
			return true
		}
	}
	return false
}

// Match returns the first bind (in declaration order) that msg triggers,
// and whether any bind matched at all. Used by the Editor's dispatch table.
func (k *Keymap) Match(msg tea.KeyMsg) (Bind, bool) {
	s := msg.String()
	for _, b := range []Bind{
		MoveToTail, MoveToHead, Backward, Forward, Completion,
		MoveToPreviousNearest, MoveToNextNearest, Erase, EraseAll,
		EraseToPreviousNearest, EraseToNextNearest, SearchUp, SearchDown,
	} {
		for _, candidate := range k.sets[b] {
			if candidate == s {
				return b, true
			}
		}
	}
	return 0, false
}

// IsPrintable reports whether a key event carries one or more printable
// characters insertable into the editor buffer (no control modifier other
// than shift).
func IsPrintable(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Alt {
		return false
	}
	return len(msg.Runes) > 0
}
