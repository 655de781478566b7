package domain

// Properties is an ordered string property set. Setting an existing key
// overwrites its value in place while preserving the first-seen key order,
// so repeated definitions resolve last-wins.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties creates an empty property set.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Set stores value under key, overwriting any earlier value.
func (p *Properties) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key, or the empty string.
func (p *Properties) Get(key string) string {
	return p.values[key]
}

// GetDefault returns the value stored under key, or def when the key is absent.
func (p *Properties) GetDefault(key, def string) string {
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

// Has reports whether key is present.
func (p *Properties) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the property names in insertion order.
func (p *Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.keys)
}
