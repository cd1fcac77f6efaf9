package childspec

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Entry describes one child element to construct: a tag name plus
// either text content or attributes, never both.
type Entry struct {
	Name  string
	Text  string
	Attrs map[string]string
}

// Spec is an ordered child specification.
type Spec []Entry

// Parse decodes a YAML or JSON sequence into a Spec.
func Parse(d []byte) (Spec, error) {
	var raw []any
	if err := yaml.Unmarshal(d, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrChildSpec, err)
	}
	return FromValues(raw)
}

// FromValues validates an already-decoded sequence. Every malformed
// entry is rejected here, before any element is built or attached.
func FromValues(raw []any) (Spec, error) {
	spec := make(Spec, 0, len(raw))
	for i, e := range raw {
		entry, err := fromValue(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		spec = append(spec, entry)
	}
	return spec, nil
}

func fromValue(e any) (Entry, error) {
	switch v := e.(type) {
	case string:
		return Entry{Name: v}, nil
	case map[string]any:
		if len(v) != 1 {
			return Entry{}, fmt.Errorf("%w: mapping entry must have exactly one key, got %d", ErrChildSpec, len(v))
		}
		for name, val := range v {
			return fromMapping(name, val)
		}
		panic("unreachable")
	default:
		return Entry{}, fmt.Errorf("%w: entry has unsupported shape %T", ErrChildSpec, e)
	}
}

func fromMapping(name string, val any) (Entry, error) {
	switch tv := val.(type) {
	case nil:
		return Entry{Name: name}, nil
	case map[string]any:
		attrs := make(map[string]string, len(tv))
		for k, av := range tv {
			s, ok := scalarString(av)
			if !ok {
				return Entry{}, fmt.Errorf("%w: attribute %q of %q is not a scalar", ErrChildSpec, k, name)
			}
			attrs[k] = s
		}
		return Entry{Name: name, Attrs: attrs}, nil
	default:
		s, ok := scalarString(val)
		if !ok {
			return Entry{}, fmt.Errorf("%w: value of %q has unsupported shape %T", ErrChildSpec, name, val)
		}
		return Entry{Name: name, Text: s}, nil
	}
}

func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(x), true
	}
	return "", false
}
