// Package theme holds the process-wide appearance state: the persisted
// light/dark/system preference, the live OS signal it resolves against,
// and the lipgloss palettes the widgets render with.
package theme

import (
	"fmt"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Preference is the user's chosen appearance mode.
type Preference int

const (
	System Preference = iota
	Light
	Dark
)

func (p Preference) String() string {
	switch p {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "system"
	}
}

// Next cycles light -> dark -> system, for a single-key control.
func (p Preference) Next() Preference {
	switch p {
	case Light:
		return Dark
	case Dark:
		return System
	default:
		return Light
	}
}

// ParsePreference converts a persisted or flag-provided string.
func ParsePreference(s string) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	case "system", "":
		return System, nil
	}
	return System, fmt.Errorf("unknown theme %q (want light, dark or system)", s)
}

// Resolved is the binary rendering choice derived from preference + signal.
type Resolved int

const (
	ResolvedLight Resolved = iota
	ResolvedDark
)

func (r Resolved) String() string {
	if r == ResolvedDark {
		return "dark"
	}
	return "light"
}

// Persister stores the preference across runs. Load's second return is
// false when nothing was persisted yet.
type Persister interface {
	Load() (Preference, bool)
	Save(Preference) error
}

// Signal reports whether the operating environment currently prefers a
// dark appearance.
type Signal func() bool

// DefaultSignal samples the terminal background via termenv.
func DefaultSignal() bool { return termenv.HasDarkBackground() }

// Store is the process-wide theme state with get/set/subscribe semantics.
// Subscribers run on the caller's goroutine after each observable change.
type Store struct {
	mu      sync.Mutex
	pref    Preference
	dark    bool
	signal  Signal
	persist Persister
	subs    []func()
}

// NewStore restores the persisted preference (falling back to System) and
// takes an initial reading of the OS signal.
func NewStore(p Persister, sig Signal) *Store {
	if sig == nil {
		sig = DefaultSignal
	}
	s := &Store{signal: sig, persist: p}
	if p != nil {
		if pref, ok := p.Load(); ok {
			s.pref = pref
		}
	}
	s.dark = sig()
	return s
}

// Preference returns the current mode.
func (s *Store) Preference() Preference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pref
}

// SetPreference updates the mode, persists it, and notifies subscribers.
// Persistence failures are swallowed: losing the preference across runs is
// preferable to blocking a theme switch.
func (s *Store) SetPreference(p Preference) {
	s.mu.Lock()
	s.pref = p
	if s.persist != nil {
		_ = s.persist.Save(p)
	}
	subs := append([]func(){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Subscribe registers fn to run after every preference change and every
// observed flip of the OS signal.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Resolved derives the concrete light/dark choice.
func (s *Store) Resolved() Resolved {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resolve(s.pref, s.dark)
}

func resolve(p Preference, dark bool) Resolved {
	switch p {
	case Light:
		return ResolvedLight
	case Dark:
		return ResolvedDark
	default:
		if dark {
			return ResolvedDark
		}
		return ResolvedLight
	}
}

// RefreshSignal re-samples the OS signal. When the resolved theme flips as
// a result, subscribers are notified; returns true in that case. Callers
// poll this while the preference is System so a live OS appearance change
// shows up without any user action.
func (s *Store) RefreshSignal() bool {
	s.mu.Lock()
	before := resolve(s.pref, s.dark)
	s.dark = s.signal()
	after := resolve(s.pref, s.dark)
	changed := before != after
	subs := append([]func(){}, s.subs...)
	s.mu.Unlock()
	if changed {
		for _, fn := range subs {
			fn()
		}
	}
	return changed
}

// Palette returns the style set for the currently resolved theme.
func (s *Store) Palette() Palette {
	if s.Resolved() == ResolvedDark {
		return DarkPalette()
	}
	return LightPalette()
}
