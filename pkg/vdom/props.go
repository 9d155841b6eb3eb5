package vdom

// Attr represents a single prop.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Props is an ordered prop list. Keys are unique.
type Props []Attr

// Get returns the value stored under key.
func (p Props) Get(key string) (any, bool) {
	for _, a := range p {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (p Props) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// GetString returns the value of key if it is a string.
func (p Props) GetString(key string) string {
	v, _ := p.Get(key)
	s, _ := v.(string)
	return s
}

// Children returns the reserved children entry as a slice.
func (p Props) Children() []any {
	v, ok := p.Get(ChildrenKey)
	if !ok {
		return nil
	}
	switch c := v.(type) {
	case []any:
		return c
	case nil:
		return nil
	default:
		return []any{c}
	}
}

// Each calls fn for every prop except children, in insertion order.
func (p Props) Each(fn func(key string, value any)) {
	for _, a := range p {
		if a.Key == ChildrenKey {
			continue
		}
		fn(a.Key, a.Value)
	}
}

// With returns a copy of p with key set to value.
func (p Props) With(key string, value any) Props {
	out := make(Props, len(p), len(p)+1)
	copy(out, p)
	return out.set(key, value)
}

// Without returns a copy of p without key.
func (p Props) Without(key string) Props {
	out := make(Props, 0, len(p))
	for _, a := range p {
		if a.Key != key {
			out = append(out, a)
		}
	}
	return out
}

func (p Props) set(key string, value any) Props {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Attr{Key: key, Value: value})
}
