package matdata

import "fmt"

// MaterialAttribute names a well-known material property.
//
// Each value documents the attribute type it is expected to carry; the
// expectation is not enforced at construction, Validate reports mismatches.
type MaterialAttribute byte

const (
	// AlphaMask is the alpha mask cutoff, TypeFloat. If set together with
	// AlphaBlend, blending is preferred, but renderers can fall back to
	// alpha-masked rendering.
	AlphaMask MaterialAttribute = iota + 1
	// AlphaBlend enables alpha blending, TypeBool. If true the material is
	// expected to be rendered blended and in correct depth order; if false
	// or absent the material is opaque.
	AlphaBlend
	// DoubleSided disables backface culling, TypeBool. Defaults to false
	// when absent.
	DoubleSided
	// AmbientColor is the Phong ambient color, TypeVector4. Multiplied with
	// AmbientTexture when both are present.
	AmbientColor
	// AmbientTexture is the Phong ambient texture index, TypeUnsignedInt.
	AmbientTexture
	// AmbientCoordinateSet is the ambient texture coordinate set index,
	// TypeUnsignedInt. Either this or CoordinateSet can be present.
	AmbientCoordinateSet
	// AmbientTextureMatrix is the ambient texture transformation,
	// TypeMatrix3x3. Either this or TextureMatrix can be present.
	AmbientTextureMatrix
	// DiffuseColor is the Phong diffuse color, TypeVector4. Multiplied with
	// DiffuseTexture when both are present.
	DiffuseColor
	// DiffuseTexture is the Phong diffuse texture index, TypeUnsignedInt.
	DiffuseTexture
	// DiffuseCoordinateSet is the diffuse texture coordinate set index,
	// TypeUnsignedInt. Either this or CoordinateSet can be present.
	DiffuseCoordinateSet
	// DiffuseTextureMatrix is the diffuse texture transformation,
	// TypeMatrix3x3. Either this or TextureMatrix can be present.
	DiffuseTextureMatrix
	// SpecularColor is the Phong specular color, TypeVector4. Multiplied
	// with SpecularTexture when both are present.
	SpecularColor
	// SpecularTexture is the Phong specular texture index, TypeUnsignedInt.
	SpecularTexture
	// SpecularCoordinateSet is the specular texture coordinate set index,
	// TypeUnsignedInt. Either this or CoordinateSet can be present.
	SpecularCoordinateSet
	// SpecularTextureMatrix is the specular texture transformation,
	// TypeMatrix3x3. Either this or TextureMatrix can be present.
	SpecularTextureMatrix
	// NormalTexture is the tangent-space normal map texture index,
	// TypeUnsignedInt.
	NormalTexture
	// NormalCoordinateSet is the normal texture coordinate set index,
	// TypeUnsignedInt. Either this or CoordinateSet can be present.
	NormalCoordinateSet
	// NormalTextureMatrix is the normal texture transformation,
	// TypeMatrix3x3. Either this or TextureMatrix can be present.
	NormalTextureMatrix
	// CoordinateSet is the common texture coordinate set index for all
	// textures, TypeUnsignedInt. Either this or a subset of the per-texture
	// coordinate sets should be present.
	CoordinateSet
	// TextureMatrix is the common texture transformation for all textures,
	// TypeMatrix3x3. Either this or a subset of the per-texture matrices
	// should be present.
	TextureMatrix
	// Shininess is the Phong shininess value, TypeFloat.
	Shininess
)

// materialAttributeNames maps well-known attributes to their names.
var materialAttributeNames = [...]string{
	AlphaMask:             "AlphaMask",
	AlphaBlend:            "AlphaBlend",
	DoubleSided:           "DoubleSided",
	AmbientColor:          "AmbientColor",
	AmbientTexture:        "AmbientTexture",
	AmbientCoordinateSet:  "AmbientCoordinateSet",
	AmbientTextureMatrix:  "AmbientTextureMatrix",
	DiffuseColor:          "DiffuseColor",
	DiffuseTexture:        "DiffuseTexture",
	DiffuseCoordinateSet:  "DiffuseCoordinateSet",
	DiffuseTextureMatrix:  "DiffuseTextureMatrix",
	SpecularColor:         "SpecularColor",
	SpecularTexture:       "SpecularTexture",
	SpecularCoordinateSet: "SpecularCoordinateSet",
	SpecularTextureMatrix: "SpecularTextureMatrix",
	NormalTexture:         "NormalTexture",
	NormalCoordinateSet:   "NormalCoordinateSet",
	NormalTextureMatrix:   "NormalTextureMatrix",
	CoordinateSet:         "CoordinateSet",
	TextureMatrix:         "TextureMatrix",
	Shininess:             "Shininess",
}

// valid reports whether m is a member of the enumeration.
func (m MaterialAttribute) valid() bool {
	return m >= AlphaMask && m <= Shininess
}

// String returns the attribute name.
func (m MaterialAttribute) String() string {
	if m.valid() {
		return materialAttributeNames[m]
	}

	return fmt.Sprintf("MaterialAttribute(%d)", byte(m))
}

// ParseMaterialAttribute resolves a text name to a well-known attribute.
// Useful for importers that read attribute names from files.
func ParseMaterialAttribute(name string) (MaterialAttribute, bool) {
	for m := AlphaMask; m <= Shininess; m++ {
		if materialAttributeNames[m] == name {
			return m, true
		}
	}

	return 0, false
}

// ExpectedType returns the documented attribute type for a well-known
// attribute, or TypeInvalid for an out-of-range value.
func (m MaterialAttribute) ExpectedType() AttributeType {
	switch m {
	case AlphaMask, Shininess:
		return TypeFloat
	case AlphaBlend, DoubleSided:
		return TypeBool
	case AmbientColor, DiffuseColor, SpecularColor:
		return TypeVector4
	case AmbientTexture, DiffuseTexture, SpecularTexture, NormalTexture,
		AmbientCoordinateSet, DiffuseCoordinateSet, SpecularCoordinateSet,
		NormalCoordinateSet, CoordinateSet:
		return TypeUnsignedInt
	case AmbientTextureMatrix, DiffuseTextureMatrix, SpecularTextureMatrix,
		NormalTextureMatrix, TextureMatrix:
		return TypeMatrix3x3
	default:
		return TypeInvalid
	}
}
