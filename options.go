package matdata

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent is the indentation string for attribute lines (default is four
	// spaces).
	Indent string
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// DisableDuplicateCheck disables reporting of records sharing one
	// resolved name. Lookup always returns the first match, so duplicates
	// usually indicate an importer bug.
	DisableDuplicateCheck bool
	// DisableTypeCheck disables validation of well-known attribute types
	// against their documented expected types.
	DisableTypeCheck bool
	// DisableExclusivityCheck disables validation of CoordinateSet and
	// TextureMatrix against their per-texture counterparts.
	DisableExclusivityCheck bool
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Indent: "    "}
	}

	out := *o
	if out.Indent == "" {
		out.Indent = "    "
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}
