package matdata

// ColorRGBA builds a Vector4 color value for color attributes.
func ColorRGBA(r, g, b, a float32) Vector4 {
	return Vector4{r, g, b, a}
}

// ColorRGB builds an opaque Vector4 color value.
func ColorRGB(r, g, b float32) Vector4 {
	return Vector4{r, g, b, 1}
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
