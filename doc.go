/*
Package matdata provides fixed-size, self-describing material attribute
records and the material collection that aggregates them.

Each attribute occupies exactly 64 bytes (AttributeSize): a one-byte type
tag, a name (a well-known MaterialAttribute or an inline free-form string)
and the raw value bytes, all packed into one record with no heap
indirection. The fixed stride lets records be stored and indexed as a flat
byte array. Supported value kinds are constrained at compile time by
AttributeValue; anything outside the set (float64, 4x4 matrices, small
integers) does not build.

Construction example:

	diffuse, err := matdata.NewAttribute(matdata.DiffuseColor, matdata.ColorRGB(1, 0, 0))
	if err != nil {
		// handle error
	}
	custom, err := matdata.NewStringAttribute("highlightRange", float32(0.25))
	if err != nil {
		// handle error (matdata.ErrAttributeOverflow for oversized names)
	}
	m := matdata.NewMaterial([]matdata.Attribute{diffuse, custom})

Lookup example:

	if a, ok := m.AttributeFor(matdata.DiffuseColor); ok {
		color, _ := matdata.Value[matdata.Vector4](a)
		_ = color
	}

Validator example:

	issues := matdata.Validate(m, nil)
	if len(issues) != 0 {
		// handle validation issues
	}

Flat storage example:

	raw := m.RawData()
	m2, err := matdata.NewMaterialFromRaw(raw)
	if err != nil {
		// handle error
	}
	_ = m2

Writer example:

	out, err := matdata.Format(m, nil)
	if err != nil {
		// handle error
	}
	_ = out
*/
package matdata
