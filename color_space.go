package rawlinear

var colorSpaceTokens = map[string]ColorSpace{
	"raw":      ColorSpaceRaw,
	"srgb":     ColorSpaceSRGB,
	"adobe":    ColorSpaceAdobe,
	"wide":     ColorSpaceWide,
	"prophoto": ColorSpaceProPhoto,
	"xyz":      ColorSpaceXYZ,
	"aces":     ColorSpaceACES,
}

// ParseColorSpace maps a color space token to its engine code.
// Matching is case-sensitive and unknown tokens map to ColorSpaceXYZ.
func ParseColorSpace(s string) ColorSpace {
	if cs, ok := colorSpaceTokens[s]; ok {
		return cs
	}
	return defaultColorSpace
}

// String returns the token of a color space.
func (cs ColorSpace) String() string {
	for k, v := range colorSpaceTokens {
		if v == cs {
			return k
		}
	}
	return "unknown"
}

type rgb struct {
	r, g, b float32
}

// toLinearSRGB converts a linear triplet in cs to linear sRGB (D65) for display.
// Raw, wide gamut and ACES data are passed through unchanged.
func toLinearSRGB(v rgb, cs ColorSpace) rgb {
	switch cs {
	case ColorSpaceXYZ:
		return xyzToSRGB(v.r, v.g, v.b)
	case ColorSpaceAdobe:
		return xyzToSRGB(0.5767309*v.r+0.185554*v.g+0.1881852*v.b,
			0.2973769*v.r+0.6273491*v.g+0.0752741*v.b,
			0.0270343*v.r+0.0706872*v.g+0.9911085*v.b)
	case ColorSpaceProPhoto:
		// ProPhoto is D50, adapt to D65 with Bradford before leaving XYZ.
		x := 0.7976749*v.r + 0.1351917*v.g + 0.0313534*v.b
		y := 0.2880402*v.r + 0.7118741*v.g + 0.0000857*v.b
		z := 0.8252100 * v.b
		return xyzToSRGB(0.9555766*x-0.0230393*y+0.0631636*z,
			-0.0282895*x+1.0099416*y+0.0210077*z,
			0.0122982*x-0.0204830*y+1.3299098*z)
	default:
		return v
	}
}

func xyzToSRGB(x, y, z float32) rgb {
	return rgb{
		r: 3.24097*x - 1.5373832*y - 0.49861076*z,
		g: -0.96924365*x + 1.8759675*y + 0.041555058*z,
		b: 0.05563008*x - 0.20397696*y + 1.0569715*z,
	}
}
