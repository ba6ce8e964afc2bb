package matdata

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// mustAttr returns a helper that unwraps an attribute constructor result
// and fails the test on error.
func mustAttr(t *testing.T) func(Attribute, error) Attribute {
	t.Helper()
	return func(a Attribute, err error) Attribute {
		t.Helper()
		if err != nil {
			t.Fatalf("construct: %v", err)
		}
		return a
	}
}

func TestAttributeKnownName(t *testing.T) {
	a := mustAttr(t)(NewAttribute(DiffuseColor, Vector4{1, 0, 0, 1}))
	if a.Type() != TypeVector4 {
		t.Fatalf("unexpected type %s", a.Type())
	}
	if a.Name() != "DiffuseColor" {
		t.Fatalf("unexpected name %q", a.Name())
	}
	known, ok := a.Known()
	if !ok || known != DiffuseColor {
		t.Fatalf("expected well-known DiffuseColor, got %v %v", known, ok)
	}
	p, err := a.Payload()
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if len(p) != 16 {
		t.Fatalf("payload size %d, want 16", len(p))
	}
	v, err := Value[Vector4](&a)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != (Vector4{1, 0, 0, 1}) {
		t.Fatalf("readback mismatch: %v", v)
	}
}

func TestAttributeBool(t *testing.T) {
	a := mustAttr(t)(NewAttribute(AlphaBlend, true))
	if a.Type() != TypeBool {
		t.Fatalf("unexpected type %s", a.Type())
	}
	p, err := a.Payload()
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if len(p) != 1 {
		t.Fatalf("payload size %d, want 1", len(p))
	}
	v, err := Value[bool](&a)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if !v {
		t.Fatalf("readback mismatch")
	}
}

func TestStringAttributeRoundTrip(t *testing.T) {
	want := Matrix3x3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	a := mustAttr(t)(NewStringAttribute("MyCustomAttr", want))
	if a.Type() != TypeMatrix3x3 {
		t.Fatalf("unexpected type %s", a.Type())
	}
	if a.Name() != "MyCustomAttr" {
		t.Fatalf("unexpected name %q", a.Name())
	}
	if _, ok := a.Known(); ok {
		t.Fatalf("string-named attribute reported as well-known")
	}
	got, err := Value[Matrix3x3](&a)
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if got != want {
		t.Fatalf("readback mismatch: %v", got)
	}
}

func TestAttributeTypes(t *testing.T) {
	cases := []struct {
		attr Attribute
		typ  AttributeType
		size int
	}{
		{mustAttr(t)(NewStringAttribute("v", true)), TypeBool, 1},
		{mustAttr(t)(NewStringAttribute("v", float32(1))), TypeFloat, 4},
		{mustAttr(t)(NewStringAttribute("v", uint32(1))), TypeUnsignedInt, 4},
		{mustAttr(t)(NewStringAttribute("v", int32(-1))), TypeInt, 4},
		{mustAttr(t)(NewStringAttribute("v", Vector2{1, 2})), TypeVector2, 8},
		{mustAttr(t)(NewStringAttribute("v", Vector2ui{1, 2})), TypeVector2ui, 8},
		{mustAttr(t)(NewStringAttribute("v", Vector2i{-1, 2})), TypeVector2i, 8},
		{mustAttr(t)(NewStringAttribute("v", Vector3{1, 2, 3})), TypeVector3, 12},
		{mustAttr(t)(NewStringAttribute("v", Vector3ui{1, 2, 3})), TypeVector3ui, 12},
		{mustAttr(t)(NewStringAttribute("v", Vector3i{-1, 2, 3})), TypeVector3i, 12},
		{mustAttr(t)(NewStringAttribute("v", Vector4{1, 2, 3, 4})), TypeVector4, 16},
		{mustAttr(t)(NewStringAttribute("v", Vector4ui{1, 2, 3, 4})), TypeVector4ui, 16},
		{mustAttr(t)(NewStringAttribute("v", Vector4i{-1, 2, 3, 4})), TypeVector4i, 16},
		{mustAttr(t)(NewStringAttribute("v", Matrix2x2{1, 2, 3, 4})), TypeMatrix2x2, 16},
		{mustAttr(t)(NewStringAttribute("v", Matrix2x3{1, 2, 3, 4, 5, 6})), TypeMatrix2x3, 24},
		{mustAttr(t)(NewStringAttribute("v", Matrix2x4{1, 2, 3, 4, 5, 6, 7, 8})), TypeMatrix2x4, 32},
		{mustAttr(t)(NewStringAttribute("v", Matrix3x2{1, 2, 3, 4, 5, 6})), TypeMatrix3x2, 24},
		{mustAttr(t)(NewStringAttribute("v", Matrix3x3{1, 2, 3, 4, 5, 6, 7, 8, 9})), TypeMatrix3x3, 36},
		{mustAttr(t)(NewStringAttribute("v", Matrix3x4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})), TypeMatrix3x4, 48},
		{mustAttr(t)(NewStringAttribute("v", Matrix4x2{1, 2, 3, 4, 5, 6, 7, 8})), TypeMatrix4x2, 32},
		{mustAttr(t)(NewStringAttribute("v", Matrix4x3{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})), TypeMatrix4x3, 48},
	}
	for _, tc := range cases {
		if tc.attr.Type() != tc.typ {
			t.Fatalf("type mismatch: got %s, want %s", tc.attr.Type(), tc.typ)
		}
		if tc.typ.Size() != tc.size {
			t.Fatalf("%s: size %d, want %d", tc.typ, tc.typ.Size(), tc.size)
		}
		p, err := tc.attr.Payload()
		if err != nil {
			t.Fatalf("%s: payload: %v", tc.typ, err)
		}
		if len(p) != tc.size {
			t.Fatalf("%s: payload size %d, want %d", tc.typ, len(p), tc.size)
		}
	}
}

func TestStringAttributeOverflow(t *testing.T) {
	name := strings.Repeat("x", 60)
	a, err := NewStringAttribute(name, Matrix3x3{})
	if !errors.Is(err, ErrAttributeOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	if a.Valid() {
		t.Fatalf("overflowing construction produced a valid record")
	}
}

func TestStringAttributeNameFits(t *testing.T) {
	// 14-byte name + 48-byte matrix + length byte fill the payload exactly.
	name := strings.Repeat("n", 14)
	a := mustAttr(t)(NewStringAttribute(name, Matrix3x4{}))
	if a.Name() != name {
		t.Fatalf("unexpected name %q", a.Name())
	}

	if _, err := NewStringAttribute(name+"n", Matrix3x4{}); !errors.Is(err, ErrAttributeOverflow) {
		t.Fatalf("expected overflow one byte past capacity, got %v", err)
	}
}

func TestEmptyStringName(t *testing.T) {
	a := mustAttr(t)(NewStringAttribute("", float32(2)))
	if a.Name() != "" {
		t.Fatalf("unexpected name %q", a.Name())
	}
	v, err := Value[float32](&a)
	if err != nil || v != 2 {
		t.Fatalf("readback mismatch: %v %v", v, err)
	}
}

func TestZeroAttributeInvalid(t *testing.T) {
	var a Attribute
	if a.Valid() {
		t.Fatalf("zero record reported valid")
	}
	if a.Type() != TypeInvalid {
		t.Fatalf("zero record type %s", a.Type())
	}
	if _, err := a.Payload(); !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("expected invalid attribute error, got %v", err)
	}
	if _, err := Value[float32](&a); !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("expected invalid attribute error, got %v", err)
	}
	if a.Name() != "" {
		t.Fatalf("zero record has name %q", a.Name())
	}
}

func TestValueTypeMismatch(t *testing.T) {
	a := mustAttr(t)(NewAttribute(DiffuseColor, Vector4{1, 0, 0, 1}))
	if _, err := Value[Vector3](&a); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
}

func TestUnknownMaterialAttribute(t *testing.T) {
	if _, err := NewAttribute(MaterialAttribute(200), float32(1)); !errors.Is(err, ErrUnknownAttribute) {
		t.Fatalf("expected unknown attribute error, got %v", err)
	}
}

func TestParseMaterialAttribute(t *testing.T) {
	m, ok := ParseMaterialAttribute("DiffuseColor")
	if !ok || m != DiffuseColor {
		t.Fatalf("parse mismatch: %v %v", m, ok)
	}
	if _, ok := ParseMaterialAttribute("NoSuchAttribute"); ok {
		t.Fatalf("parsed a bogus name")
	}
}

func TestMaterialLookup(t *testing.T) {
	m := NewMaterial([]Attribute{
		mustAttr(t)(NewAttribute(DiffuseColor, Vector4{1, 0, 0, 1})),
		mustAttr(t)(NewAttribute(AmbientTexture, uint32(3))),
		mustAttr(t)(NewAttribute(Shininess, float32(80))),
	})
	if m.AttributeCount() != 3 {
		t.Fatalf("count %d, want 3", m.AttributeCount())
	}

	a, ok := m.AttributeFor(AmbientTexture)
	if !ok {
		t.Fatalf("AmbientTexture not found")
	}
	idx, err := Value[uint32](a)
	if err != nil || idx != 3 {
		t.Fatalf("texture index mismatch: %v %v", idx, err)
	}

	byName, ok := m.AttributeByName("Shininess")
	if !ok || byName.Type() != TypeFloat {
		t.Fatalf("Shininess lookup failed")
	}

	if _, ok := m.AttributeFor(NormalTexture); ok {
		t.Fatalf("found absent attribute")
	}
	if _, ok := m.AttributeByName("NoSuchAttr"); ok {
		t.Fatalf("found absent name")
	}
	if !m.HasAttribute(DiffuseColor) || m.HasAttribute(TextureMatrix) {
		t.Fatalf("presence check mismatch")
	}
}

func TestMaterialOrderPreserved(t *testing.T) {
	attrs := []Attribute{
		mustAttr(t)(NewAttribute(Shininess, float32(80))),
		mustAttr(t)(NewStringAttribute("custom", int32(-7))),
		mustAttr(t)(NewAttribute(DoubleSided, true)),
	}
	names := []string{"Shininess", "custom", "DoubleSided"}

	m := NewMaterial(attrs)
	for i := 0; i < m.AttributeCount(); i++ {
		if m.AttributeAt(i).Name() != names[i] {
			t.Fatalf("position %d holds %q, want %q", i, m.AttributeAt(i).Name(), names[i])
		}
	}
}

func TestRawRoundTrip(t *testing.T) {
	m := NewMaterial([]Attribute{
		mustAttr(t)(NewAttribute(DiffuseColor, Vector4{1, 0, 0, 1})),
		mustAttr(t)(NewStringAttribute("glow", float32(0.5))),
		mustAttr(t)(NewAttribute(TextureMatrix, Matrix3x3{1, 0, 0, 0, 1, 0, 0, 0, 1})),
	})

	raw := m.RawData()
	if len(raw) != 3*AttributeSize {
		t.Fatalf("raw length %d, want %d", len(raw), 3*AttributeSize)
	}

	m2, err := NewMaterialFromRaw(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m2.AttributeCount() != m.AttributeCount() {
		t.Fatalf("count mismatch")
	}
	for i := 0; i < m.AttributeCount(); i++ {
		a, b := m.AttributeAt(i), m2.AttributeAt(i)
		if a.Type() != b.Type() || a.Name() != b.Name() {
			t.Fatalf("record %d mismatch", i)
		}
		pa, _ := a.Payload()
		pb, _ := b.Payload()
		if !bytes.Equal(pa, pb) {
			t.Fatalf("record %d payload mismatch", i)
		}
	}
	if !bytes.Equal(m2.RawData(), raw) {
		t.Fatalf("re-encoded raw data differs")
	}
}

func TestRawRejectsMalformed(t *testing.T) {
	if _, err := NewMaterialFromRaw(make([]byte, AttributeSize+1)); !errors.Is(err, ErrRawData) {
		t.Fatalf("expected raw data error for bad length, got %v", err)
	}

	bad := make([]byte, AttributeSize)
	bad[0] = 200 // no such tag
	if _, err := NewMaterialFromRaw(bad); !errors.Is(err, ErrRawData) {
		t.Fatalf("expected raw data error for bad tag, got %v", err)
	}

	overflow := make([]byte, AttributeSize)
	overflow[0] = byte(TypeMatrix3x4)
	overflow[1] = 62 // name alone would leave no room for the value
	if _, err := NewMaterialFromRaw(overflow); !errors.Is(err, ErrRawData) {
		t.Fatalf("expected raw data error for overflowing name, got %v", err)
	}

	unknown := make([]byte, AttributeSize)
	unknown[0] = byte(TypeFloat)
	unknown[1] = knownNameFlag | 100 // out of enumeration range
	if _, err := NewMaterialFromRaw(unknown); !errors.Is(err, ErrRawData) {
		t.Fatalf("expected raw data error for unknown name, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	m := NewMaterial([]Attribute{
		mustAttr(t)(NewAttribute(DiffuseColor, Vector4{1, 0, 0, 1})),
		mustAttr(t)(NewAttribute(AlphaBlend, true)),
		mustAttr(t)(NewStringAttribute("glow", float32(0.5))),
	})

	out, err := Format(m, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "material\n{\n" +
		"    DiffuseColor (Vector4) = {1, 0, 0, 1};\n" +
		"    AlphaBlend (Bool) = true;\n" +
		"    \"glow\" (Float) = 0.5;\n" +
		"}\n"
	if string(out) != want {
		t.Fatalf("format mismatch:\n%s\nwant:\n%s", out, want)
	}
}

func TestFormatRejectsUnsetRecord(t *testing.T) {
	m := NewMaterial(make([]Attribute, 1))
	if _, err := Format(m, nil); !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("expected invalid attribute error, got %v", err)
	}
}
