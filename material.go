package matdata

// Material is an ordered, immutable collection of attribute records
// describing one material.
type Material struct {
	attributes []Attribute // Attribute records in insertion order
}

// NewMaterial creates a material from attrs, taking ownership of the slice.
// The caller must not keep using the slice after the handoff. Individual
// records are already well-formed by construction; no further validation
// happens here, use Validate for consistency checks.
func NewMaterial(attrs []Attribute) *Material {
	return &Material{attributes: attrs}
}

// AttributeCount returns the number of attribute records.
func (m *Material) AttributeCount() int {
	return len(m.attributes)
}

// AttributeAt returns the record at position i in insertion order. Panics if
// i is out of range.
func (m *Material) AttributeAt(i int) *Attribute {
	return &m.attributes[i]
}

// AttributeFor looks up the first record with the given well-known name.
func (m *Material) AttributeFor(name MaterialAttribute) (*Attribute, bool) {
	for i := range m.attributes {
		if known, ok := m.attributes[i].Known(); ok && known == name {
			return &m.attributes[i], true
		}
	}

	return nil, false
}

// AttributeByName looks up the first record whose resolved name matches.
// Well-known records match their enumeration name, so a lookup for
// "DiffuseColor" finds a record built with the DiffuseColor constant.
func (m *Material) AttributeByName(name string) (*Attribute, bool) {
	for i := range m.attributes {
		if m.attributes[i].Name() == name {
			return &m.attributes[i], true
		}
	}

	return nil, false
}

// HasAttribute reports whether a record with the given well-known name is
// present.
func (m *Material) HasAttribute(name MaterialAttribute) bool {
	_, ok := m.AttributeFor(name)
	return ok
}
