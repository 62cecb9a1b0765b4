package theme

import (
	"evalbench/internal/config"
)

// FilePersister stores the preference in the evalbench settings file.
// Other settings in the file are preserved on write.
type FilePersister struct {
	Path string
}

func (f FilePersister) Load() (Preference, bool) {
	s, err := config.Load(f.Path)
	if err != nil || s.Theme == "" {
		return System, false
	}
	p, err := ParsePreference(s.Theme)
	if err != nil {
		return System, false
	}
	return p, true
}

func (f FilePersister) Save(p Preference) error {
	s, err := config.Load(f.Path)
	if err != nil {
		s = &config.Settings{}
	}
	s.Theme = p.String()
	return config.Save(f.Path, s)
}
