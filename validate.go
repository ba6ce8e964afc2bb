package matdata

import "fmt"

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Affected attribute
}

// coordinateSetAttributes are the per-texture alternatives to CoordinateSet.
var coordinateSetAttributes = []MaterialAttribute{
	AmbientCoordinateSet,
	DiffuseCoordinateSet,
	SpecularCoordinateSet,
	NormalCoordinateSet,
}

// textureMatrixAttributes are the per-texture alternatives to TextureMatrix.
var textureMatrixAttributes = []MaterialAttribute{
	AmbientTextureMatrix,
	DiffuseTextureMatrix,
	SpecularTextureMatrix,
	NormalTextureMatrix,
}

// Validate validates a material and returns issues.
//
// Records are individually well-formed by construction; this checks the
// cross-record conventions consumers rely on: no unset records, no
// duplicate resolved names, well-known attributes carrying their documented
// types, and common attributes not mixed with their per-texture
// counterparts.
func Validate(m *Material, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	for i := range m.attributes {
		if !m.attributes[i].Valid() {
			out = append(out, Issue{
				Level:   IssueError,
				Message: "unset attribute record",
				Path:    fmt.Sprintf("#%d", i),
			})
		}
	}

	if !vopt.DisableDuplicateCheck {
		seen := make(map[string]struct{}, len(m.attributes))
		for i := range m.attributes {
			a := &m.attributes[i]
			if !a.Valid() {
				continue
			}
			name := a.Name()
			if _, ok := seen[name]; ok {
				out = append(out, Issue{Level: IssueError, Message: "duplicate attribute name", Path: name})
				continue
			}
			seen[name] = struct{}{}
		}
	}

	if !vopt.DisableTypeCheck {
		for i := range m.attributes {
			a := &m.attributes[i]
			known, ok := a.Known()
			if !ok {
				continue
			}
			if a.Type() != known.ExpectedType() {
				out = append(out, Issue{
					Level:   IssueWarning,
					Code:    "type_mismatch",
					Message: fmt.Sprintf("expected %s, found %s", known.ExpectedType(), a.Type()),
					Path:    known.String(),
				})
			}
		}
	}

	if !vopt.DisableExclusivityCheck {
		out = append(out, validateExclusive(m, CoordinateSet, coordinateSetAttributes)...)
		out = append(out, validateExclusive(m, TextureMatrix, textureMatrixAttributes)...)
	}

	return out
}

// validateExclusive reports per-texture attributes present alongside their
// common counterpart.
func validateExclusive(m *Material, common MaterialAttribute, perTexture []MaterialAttribute) []Issue {
	if !m.HasAttribute(common) {
		return nil
	}

	var out []Issue
	for _, name := range perTexture {
		if m.HasAttribute(name) {
			out = append(out, Issue{
				Level:   IssueWarning,
				Message: fmt.Sprintf("present together with %s", common),
				Path:    name.String(),
			})
		}
	}

	return out
}
