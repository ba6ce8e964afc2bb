package matdata

import "github.com/pkg/errors"

// RawData serializes all attribute records as a flat byte array with a
// fixed AttributeSize stride, bit-exact to the in-memory layout. Record i
// starts at offset i*AttributeSize.
func (m *Material) RawData() []byte {
	out := make([]byte, len(m.attributes)*AttributeSize)
	for i := range m.attributes {
		copy(out[i*AttributeSize:], m.attributes[i].data[:])
	}

	return out
}

// NewMaterialFromRaw rebuilds a material from a flat attribute array
// produced by RawData or by compatible tooling. The buffer length must be a
// multiple of AttributeSize and every record must carry a valid type tag
// and a name encoding that fits the payload.
func NewMaterialFromRaw(buf []byte) (*Material, error) {
	if len(buf)%AttributeSize != 0 {
		return nil, errors.Wrapf(ErrRawData,
			"length %d is not a multiple of %d", len(buf), AttributeSize)
	}

	attrs := make([]Attribute, len(buf)/AttributeSize)
	for i := range attrs {
		copy(attrs[i].data[:], buf[i*AttributeSize:])
		if err := attrs[i].check(); err != nil {
			return nil, errors.Wrapf(err, "attribute %d", i)
		}
	}

	return NewMaterial(attrs), nil
}
