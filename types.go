package matdata

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// AttributeType identifies the storage kind of an attribute value.
//
// The set is deliberately reduced to full 32-bit types: no 8-, 16-bit or
// half-float kinds, and no doubles. Matrix4x4 is absent because its encoded
// size (64 bytes) exceeds the record value capacity of 48 bytes.
type AttributeType byte

const (
	// TypeInvalid marks an unset record. Never a real type.
	TypeInvalid AttributeType = iota
	// TypeBool is a bool.
	TypeBool
	// TypeFloat is a float32.
	TypeFloat
	// TypeUnsignedInt is a uint32.
	TypeUnsignedInt
	// TypeInt is an int32.
	TypeInt
	// TypeVector2 is a two-component float32 vector.
	TypeVector2
	// TypeVector2ui is a two-component uint32 vector.
	TypeVector2ui
	// TypeVector2i is a two-component int32 vector.
	TypeVector2i
	// TypeVector3 is a three-component float32 vector.
	TypeVector3
	// TypeVector3ui is a three-component uint32 vector.
	TypeVector3ui
	// TypeVector3i is a three-component int32 vector.
	TypeVector3i
	// TypeVector4 is a four-component float32 vector.
	TypeVector4
	// TypeVector4ui is a four-component uint32 vector.
	TypeVector4ui
	// TypeVector4i is a four-component int32 vector.
	TypeVector4i
	// TypeMatrix2x2 is a 2x2 float32 matrix.
	TypeMatrix2x2
	// TypeMatrix2x3 is a 2x3 float32 matrix.
	TypeMatrix2x3
	// TypeMatrix2x4 is a 2x4 float32 matrix.
	TypeMatrix2x4
	// TypeMatrix3x2 is a 3x2 float32 matrix.
	TypeMatrix3x2
	// TypeMatrix3x3 is a 3x3 float32 matrix.
	TypeMatrix3x3
	// TypeMatrix3x4 is a 3x4 float32 matrix.
	TypeMatrix3x4
	// TypeMatrix4x2 is a 4x2 float32 matrix.
	TypeMatrix4x2
	// TypeMatrix4x3 is a 4x3 float32 matrix.
	TypeMatrix4x3
)

// Value type aliases. Float vectors and matrices come from mathgl, integer
// vectors are plain arrays with the same layout.
type (
	// Vector2 is a two-component float32 vector.
	Vector2 = mgl32.Vec2
	// Vector3 is a three-component float32 vector.
	Vector3 = mgl32.Vec3
	// Vector4 is a four-component float32 vector.
	Vector4 = mgl32.Vec4
	// Matrix2x2 is a 2x2 float32 matrix.
	Matrix2x2 = mgl32.Mat2
	// Matrix2x3 is a 2x3 float32 matrix.
	Matrix2x3 = mgl32.Mat2x3
	// Matrix2x4 is a 2x4 float32 matrix.
	Matrix2x4 = mgl32.Mat2x4
	// Matrix3x2 is a 3x2 float32 matrix.
	Matrix3x2 = mgl32.Mat3x2
	// Matrix3x3 is a 3x3 float32 matrix.
	Matrix3x3 = mgl32.Mat3
	// Matrix3x4 is a 3x4 float32 matrix.
	Matrix3x4 = mgl32.Mat3x4
	// Matrix4x2 is a 4x2 float32 matrix.
	Matrix4x2 = mgl32.Mat4x2
	// Matrix4x3 is a 4x3 float32 matrix.
	Matrix4x3 = mgl32.Mat4x3
)

// Vector2ui is a two-component uint32 vector.
type Vector2ui [2]uint32

// Vector2i is a two-component int32 vector.
type Vector2i [2]int32

// Vector3ui is a three-component uint32 vector.
type Vector3ui [3]uint32

// Vector3i is a three-component int32 vector.
type Vector3i [3]int32

// Vector4ui is a four-component uint32 vector.
type Vector4ui [4]uint32

// Vector4i is a four-component int32 vector.
type Vector4i [4]int32

// AttributeValue constrains the Go kinds storable in an Attribute record.
// Anything outside this set (float64, Mat4, small integers) is rejected at
// compile time.
type AttributeValue interface {
	bool | float32 | uint32 | int32 |
		Vector2 | Vector2ui | Vector2i |
		Vector3 | Vector3ui | Vector3i |
		Vector4 | Vector4ui | Vector4i |
		Matrix2x2 | Matrix2x3 | Matrix2x4 |
		Matrix3x2 | Matrix3x3 | Matrix3x4 |
		Matrix4x2 | Matrix4x3
}

// attributeTypeFor resolves the type tag for a supported value kind.
func attributeTypeFor[T AttributeValue]() AttributeType {
	var v T
	switch any(v).(type) {
	case bool:
		return TypeBool
	case float32:
		return TypeFloat
	case uint32:
		return TypeUnsignedInt
	case int32:
		return TypeInt
	case Vector2:
		return TypeVector2
	case Vector2ui:
		return TypeVector2ui
	case Vector2i:
		return TypeVector2i
	case Vector3:
		return TypeVector3
	case Vector3ui:
		return TypeVector3ui
	case Vector3i:
		return TypeVector3i
	case Vector4:
		return TypeVector4
	case Vector4ui:
		return TypeVector4ui
	case Vector4i:
		return TypeVector4i
	case Matrix2x2:
		return TypeMatrix2x2
	case Matrix2x3:
		return TypeMatrix2x3
	case Matrix2x4:
		return TypeMatrix2x4
	case Matrix3x2:
		return TypeMatrix3x2
	case Matrix3x3:
		return TypeMatrix3x3
	case Matrix3x4:
		return TypeMatrix3x4
	case Matrix4x2:
		return TypeMatrix4x2
	case Matrix4x3:
		return TypeMatrix4x3
	}

	return TypeInvalid
}

// Size returns the exact byte size of a value of this type, or 0 for an
// invalid tag.
func (t AttributeType) Size() int {
	switch t {
	case TypeBool:
		return 1
	case TypeFloat, TypeUnsignedInt, TypeInt:
		return 4
	case TypeVector2, TypeVector2ui, TypeVector2i:
		return 8
	case TypeVector3, TypeVector3ui, TypeVector3i:
		return 12
	case TypeVector4, TypeVector4ui, TypeVector4i, TypeMatrix2x2:
		return 16
	case TypeMatrix2x3, TypeMatrix3x2:
		return 24
	case TypeMatrix2x4, TypeMatrix4x2:
		return 32
	case TypeMatrix3x3:
		return 36
	case TypeMatrix3x4, TypeMatrix4x3:
		return 48
	default:
		return 0
	}
}

// attributeTypeNames maps type tags to their names.
var attributeTypeNames = [...]string{
	TypeBool:        "Bool",
	TypeFloat:       "Float",
	TypeUnsignedInt: "UnsignedInt",
	TypeInt:         "Int",
	TypeVector2:     "Vector2",
	TypeVector2ui:   "Vector2ui",
	TypeVector2i:    "Vector2i",
	TypeVector3:     "Vector3",
	TypeVector3ui:   "Vector3ui",
	TypeVector3i:    "Vector3i",
	TypeVector4:     "Vector4",
	TypeVector4ui:   "Vector4ui",
	TypeVector4i:    "Vector4i",
	TypeMatrix2x2:   "Matrix2x2",
	TypeMatrix2x3:   "Matrix2x3",
	TypeMatrix2x4:   "Matrix2x4",
	TypeMatrix3x2:   "Matrix3x2",
	TypeMatrix3x3:   "Matrix3x3",
	TypeMatrix3x4:   "Matrix3x4",
	TypeMatrix4x2:   "Matrix4x2",
	TypeMatrix4x3:   "Matrix4x3",
}

// String returns the type name.
func (t AttributeType) String() string {
	if int(t) < len(attributeTypeNames) && attributeTypeNames[t] != "" {
		return attributeTypeNames[t]
	}

	return fmt.Sprintf("AttributeType(%d)", byte(t))
}
