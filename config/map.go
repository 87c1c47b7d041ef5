package config

// Map is a map containing configuration values.
type Map interface {

	// Lookup looks up a single value with a complete key.
	Lookup(key string) (string, bool)
}

// A StdMap is a map[string]string.
type StdMap map[string]string

func (m StdMap) Lookup(key string) (string, bool) {
	found, ok := m[key]
	return found, ok
}

// A Chain is a [Map] that looks a key up in each of its maps in order and returns the first
// value found. Put overrides first, e.g. Chain{EnvMap{}, store}.
type Chain []Map

func (c Chain) Lookup(key string) (string, bool) {
	for _, m := range c {
		if m == nil {
			continue
		}
		if found, ok := m.Lookup(key); ok {
			return found, true
		}
	}
	return "", false
}

var (
	_ Map = StdMap(nil)
	_ Map = EnvMap{}
	_ Map = Chain(nil)
	_ Map = (*Store)(nil)
)
