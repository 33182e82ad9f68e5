package theme

import (
	"encoding/json"
	"log"
)

// Preference is the persisted dark-mode flag.
type Preference struct {
	store Store
	key   string
	dark  bool
}

// LoadPreference reads the flag under key. Absent or unreadable values
// fall back to dark.
func LoadPreference(store Store, key string) *Preference {
	p := &Preference{store: store, key: key, dark: true}
	raw, ok := store.Get(key)
	if !ok {
		return p
	}
	var dark bool
	if err := json.Unmarshal(raw, &dark); err != nil {
		log.Printf("theme: ignoring stored %s=%q: %v", key, raw, err)
		return p
	}
	p.dark = dark
	return p
}

func (p *Preference) Dark() bool { return p.dark }

func (p *Preference) Palette() Palette { return For(p.dark) }

// Toggle flips the flag, writes it back and returns the new value.
// A failed write keeps the in-memory value and is only logged.
func (p *Preference) Toggle() bool {
	p.dark = !p.dark
	raw, _ := json.Marshal(p.dark)
	if err := p.store.Set(p.key, raw); err != nil {
		log.Printf("theme: persist %s: %v", p.key, err)
	}
	return p.dark
}
