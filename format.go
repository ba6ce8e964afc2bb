package matdata

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
)

// Encode writes a readable rendering of a material to writer, one attribute
// per line in insertion order. Output is deterministic, so it is usable for
// golden files and diffs.
func Encode(w io.Writer, m *Material, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "material\n{\n")
	for i := range m.attributes {
		a := &m.attributes[i]
		if !a.Valid() {
			return errors.Wrapf(ErrInvalidAttribute, "attribute %d", i)
		}

		name := a.Name()
		if _, ok := a.Known(); !ok {
			name = strconv.Quote(name)
		}
		fmt.Fprintf(bw, "%s%s (%s) = %s;\n", fopt.Indent, name, a.Type(), formatValue(a))
	}
	fmt.Fprintf(bw, "}\n")

	return bw.Flush()
}

// EncodeFile writes a readable rendering of a material to a file.
func EncodeFile(path string, m *Material, opt *FormatOptions) error {
	b, err := Format(m, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a material to bytes.
func Format(m *Material, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// formatValue renders the value of a valid record.
func formatValue(a *Attribute) string {
	switch a.Type() {
	case TypeBool:
		v, _ := Value[bool](a)
		return strconv.FormatBool(v)
	case TypeUnsignedInt, TypeVector2ui, TypeVector3ui, TypeVector4ui:
		var parts []string
		for _, v := range payloadUints(a) {
			parts = append(parts, strconv.FormatUint(uint64(v), 10))
		}
		return joinComponents(parts)
	case TypeInt, TypeVector2i, TypeVector3i, TypeVector4i:
		var parts []string
		for _, v := range payloadInts(a) {
			parts = append(parts, strconv.FormatInt(int64(v), 10))
		}
		return joinComponents(parts)
	default:
		var parts []string
		for _, v := range payloadFloats(a) {
			parts = append(parts, strconv.FormatFloat(float64(v), 'g', -1, 32))
		}
		return joinComponents(parts)
	}
}

// joinComponents renders a scalar bare and anything wider in braces.
func joinComponents(parts []string) string {
	if len(parts) == 1 {
		return parts[0]
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// payloadFloats reads the payload of a float-kind record as components.
func payloadFloats(a *Attribute) []float32 {
	p, err := a.Payload()
	if err != nil {
		return nil
	}
	out := make([]float32, len(p)/4)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(p)), p)

	return out
}

// payloadUints reads the payload of an unsigned-kind record as components.
func payloadUints(a *Attribute) []uint32 {
	p, err := a.Payload()
	if err != nil {
		return nil
	}
	out := make([]uint32, len(p)/4)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(p)), p)

	return out
}

// payloadInts reads the payload of a signed-kind record as components.
func payloadInts(a *Attribute) []int32 {
	p, err := a.Payload()
	if err != nil {
		return nil
	}
	out := make([]int32, len(p)/4)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(p)), p)

	return out
}
