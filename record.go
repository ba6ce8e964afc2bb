package matdata

import (
	"unsafe"

	"github.com/pkg/errors"
)

const (
	// AttributeSize is the fixed encoded size of one attribute record.
	AttributeSize = 64

	// attributePayload is the record capacity left for the name encoding and
	// value bytes once the type tag byte is subtracted.
	attributePayload = AttributeSize - 1

	// knownNameFlag marks the name byte as a MaterialAttribute value instead
	// of a string length.
	knownNameFlag = 0x80
)

// Attribute is one fixed-size material attribute record.
//
// Byte 0 holds the type tag (0 marks an unset record), byte 1 the name
// encoding marker, and the remaining bytes the name followed immediately by
// the raw value in its native in-memory representation. The layout is
// stable, so records can be stored and indexed as a flat byte array with a
// 64-byte stride.
//
// A record is built in one step by NewAttribute or NewStringAttribute and is
// immutable afterwards. The zero value is an invalid record; every accessor
// on it fails cleanly.
type Attribute struct {
	_    [0]uint64 // Keep records 8-byte aligned in flat arrays
	data [AttributeSize]byte
}

// NewAttribute builds a record for a well-known attribute name. The value
// type is resolved statically from T. Fails only for a name outside the
// MaterialAttribute enumeration; a well-known name and any supported value
// always fit the payload.
func NewAttribute[T AttributeValue](name MaterialAttribute, value T) (Attribute, error) {
	if !name.valid() {
		return Attribute{}, errors.Wrapf(ErrUnknownAttribute, "value %d", byte(name))
	}

	var a Attribute
	a.data[1] = knownNameFlag | byte(name)
	putValue(&a, 2, value)
	a.data[0] = byte(attributeTypeFor[T]())

	return a, nil
}

// NewStringAttribute builds a record with a free-form text name, copied
// inline into the record. The name encoding takes len(name)+1 bytes of the
// payload; if name and value together exceed the capacity the constructor
// fails before writing anything. An empty name is legal.
func NewStringAttribute[T AttributeValue](name string, value T) (Attribute, error) {
	t := attributeTypeFor[T]()
	need := 1 + len(name) + t.Size()
	if need > attributePayload {
		return Attribute{}, errors.Wrapf(ErrAttributeOverflow,
			"name %q and %s value need %d payload bytes, %d available",
			name, t, need, attributePayload)
	}

	var a Attribute
	a.data[1] = byte(len(name))
	copy(a.data[2:], name)
	putValue(&a, 2+len(name), value)
	// Tag written last so a record is only ever observed fully populated.
	a.data[0] = byte(t)

	return a, nil
}

// putValue copies the native in-memory bytes of value into the record
// payload at off. No endianness conversion.
func putValue[T AttributeValue](a *Attribute, off int, value T) {
	size := attributeTypeFor[T]().Size()
	copy(a.data[off:], unsafe.Slice((*byte)(unsafe.Pointer(&value)), size))
}

// Type returns the type tag of the record.
func (a *Attribute) Type() AttributeType {
	return AttributeType(a.data[0])
}

// Valid reports whether the record holds a value.
func (a *Attribute) Valid() bool {
	return a.Type().Size() != 0
}

// Known returns the well-known attribute name, if the record was built with
// one.
func (a *Attribute) Known() (MaterialAttribute, bool) {
	if !a.Valid() || a.data[1]&knownNameFlag == 0 {
		return 0, false
	}

	return MaterialAttribute(a.data[1] &^ knownNameFlag), true
}

// Name returns the resolved attribute name: the enumeration name for a
// well-known attribute, the inline text otherwise. Empty for an invalid
// record.
func (a *Attribute) Name() string {
	if !a.Valid() {
		return ""
	}
	if m, ok := a.Known(); ok {
		return m.String()
	}

	return string(a.data[2 : 2+int(a.data[1])])
}

// valueOffset returns the offset of the value bytes within the record.
func (a *Attribute) valueOffset() int {
	if a.data[1]&knownNameFlag != 0 {
		return 2
	}

	return 2 + int(a.data[1])
}

// Payload returns the raw value bytes, sized exactly to the record type.
// The slice aliases the record and must not be modified.
func (a *Attribute) Payload() ([]byte, error) {
	if !a.Valid() {
		return nil, ErrInvalidAttribute
	}
	off := a.valueOffset()

	return a.data[off : off+a.Type().Size()], nil
}

// Value reads the record value as T. The requested type must match the
// stored type tag exactly.
func Value[T AttributeValue](a *Attribute) (T, error) {
	var v T
	if !a.Valid() {
		return v, ErrInvalidAttribute
	}

	t := attributeTypeFor[T]()
	if a.Type() != t {
		return v, errors.Wrapf(ErrTypeMismatch,
			"attribute %q holds %s, requested %s", a.Name(), a.Type(), t)
	}

	off := a.valueOffset()
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), t.Size()), a.data[off:])

	return v, nil
}

// check verifies the internal consistency of a record decoded from raw
// bytes.
func (a *Attribute) check() error {
	t := a.Type()
	size := t.Size()
	if size == 0 {
		return errors.Wrapf(ErrRawData, "invalid type tag %d", a.data[0])
	}

	if a.data[1]&knownNameFlag != 0 {
		if name := MaterialAttribute(a.data[1] &^ knownNameFlag); !name.valid() {
			return errors.Wrapf(ErrRawData, "unknown attribute name %d", byte(name))
		}
		return nil
	}

	if 1+int(a.data[1])+size > attributePayload {
		return errors.Wrap(ErrRawData, "name and value exceed record capacity")
	}

	return nil
}
