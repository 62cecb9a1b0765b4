package theme

import (
	"path/filepath"
	"testing"
)

type memPersister struct {
	pref  Preference
	ok    bool
	saves int
}

func (m *memPersister) Load() (Preference, bool) { return m.pref, m.ok }
func (m *memPersister) Save(p Preference) error {
	m.pref = p
	m.ok = true
	m.saves++
	return nil
}

func TestParsePreference(t *testing.T) {
	for in, want := range map[string]Preference{
		"light": Light, "DARK": Dark, "system": System, "": System,
	} {
		got, err := ParsePreference(in)
		if err != nil {
			t.Fatalf("ParsePreference(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParsePreference(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePreference("solarized"); err == nil {
		t.Fatalf("expected error for unknown preference")
	}
}

func TestStoreRestoresPersistedPreference(t *testing.T) {
	s := NewStore(&memPersister{pref: Dark, ok: true}, func() bool { return false })
	if s.Preference() != Dark {
		t.Fatalf("expected persisted Dark preference")
	}
	if s.Resolved() != ResolvedDark {
		t.Fatalf("explicit dark must resolve dark regardless of signal")
	}
}

func TestSetPreferencePersistsAndNotifies(t *testing.T) {
	p := &memPersister{}
	s := NewStore(p, func() bool { return false })
	notified := 0
	s.Subscribe(func() { notified++ })
	s.SetPreference(Light)
	if p.saves != 1 || p.pref != Light {
		t.Fatalf("expected preference saved, got %+v", p)
	}
	if notified != 1 {
		t.Fatalf("expected one notification, got %d", notified)
	}
}

func TestSystemTracksSignal(t *testing.T) {
	dark := false
	s := NewStore(nil, func() bool { return dark })
	if s.Resolved() != ResolvedLight {
		t.Fatalf("expected light resolution initially")
	}
	dark = true
	if !s.RefreshSignal() {
		t.Fatalf("expected RefreshSignal to report a flip")
	}
	if s.Resolved() != ResolvedDark {
		t.Fatalf("system preference must track the signal")
	}
	// No flip when the signal is unchanged.
	if s.RefreshSignal() {
		t.Fatalf("expected no flip on an unchanged signal")
	}
}

func TestExplicitPreferenceIgnoresSignal(t *testing.T) {
	dark := false
	s := NewStore(nil, func() bool { return dark })
	s.SetPreference(Light)
	dark = true
	if s.RefreshSignal() {
		t.Fatalf("signal flip must not change an explicit preference")
	}
	if s.Resolved() != ResolvedLight {
		t.Fatalf("expected light resolution under explicit Light")
	}
}

func TestPreferenceCycle(t *testing.T) {
	if Light.Next() != Dark || Dark.Next() != System || System.Next() != Light {
		t.Fatalf("unexpected cycle order")
	}
}

func TestFilePersisterRoundTrip(t *testing.T) {
	f := FilePersister{Path: filepath.Join(t.TempDir(), "settings.json")}
	if _, ok := f.Load(); ok {
		t.Fatalf("expected no persisted preference on first run")
	}
	if err := f.Save(Dark); err != nil {
		t.Fatalf("save: %v", err)
	}
	p, ok := f.Load()
	if !ok || p != Dark {
		t.Fatalf("expected Dark to round-trip, got %v ok=%v", p, ok)
	}
}
