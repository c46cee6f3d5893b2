package glwindow

import "fmt"

// Hint is a single window creation hint, a platform hint key and its value.
type Hint struct {
	Key   int
	Value int
}

// Hints are applied in order before a window is created. An empty set leaves
// the platform defaults in place.
type Hints []Hint

// NamedHint is a hint whose key is spelled symbolically, for example in a config file.
type NamedHint struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// ResolveHints translates named hints through the platform, preserving order.
func ResolveHints(p Platform, named []NamedHint) (Hints, error) {
	if len(named) == 0 {
		return nil, nil
	}
	hints := make(Hints, 0, len(named))
	for _, n := range named {
		key, ok := p.ResolveHint(n.Name)
		if !ok {
			return nil, fmt.Errorf("unknown window hint %q", n.Name)
		}
		hints = append(hints, Hint{Key: key, Value: n.Value})
	}
	return hints, nil
}
