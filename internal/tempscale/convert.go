package tempscale

import "math"

const (
	// ipts68Coeff is c in the IPTS-68 closed form above ipts68TableMax.
	ipts68Coeff    = 1.398e-7
	ipts68TableMax = 1337.58

	// NPL-75 has corrections only at the helium and hydrogen ends.
	npl75LowMax  = 4.2221
	npl75HighMin = 13.80349

	// EPT-76 has no official ITS-90 conversion below this.
	ept76Min = 5.0
)

// converters maps each scale to its ITS-90 conversion.
var converters = map[Scale]func(float64) float64{
	ScaleITS27:  its27Table.Interpolate,
	ScaleIPTS48: ipts48Table.Interpolate,
	ScaleIPTS68: ipts68ToITS90,
	ScaleITS90:  func(t float64) float64 { return t },
	ScaleEPT76:  ept76Table.Interpolate,
	ScaleNBS39:  nbs39ToITS90,
	ScaleNBS55:  nbs55Table.Interpolate,
	ScaleNPL61:  npl61Table.Interpolate,
	ScaleNPL75:  npl75ToITS90,
	ScaleXISU:   xisuToITS90,
	ScaleHe458:  he458ToITS90,
	ScaleHe362:  he362Table.Interpolate,
	ScalePRMI54: prmi54Table.Interpolate,
	ScalePSU54:  psu54Table.Interpolate,
}

// ToITS90 converts a kelvin temperature on scale s to ITS-90. ScaleNone and
// unknown scales return t unchanged.
func ToITS90(s Scale, t float64) float64 {
	conv, ok := converters[s]
	if !ok {
		return t
	}
	return conv(t)
}

func ipts68ToITS90(t float64) float64 {
	if t > ipts68TableMax {
		return math.Sqrt(t/ipts68Coeff+1/(4*ipts68Coeff*ipts68Coeff)) - 1/(2*ipts68Coeff)
	}
	return ipts68Table.Interpolate(t)
}

func nbs39ToITS90(t float64) float64 {
	return npl61Table.Interpolate(nbs39ToNPL61Table.Interpolate(t))
}

// He3-62 and the low end of He4-58 only reach EPT-76, which is reported as is.
func he458ToITS90(t float64) float64 {
	t76 := he458ToEPT76Table.Interpolate(t)
	if t76 >= ept76Min {
		return ept76Table.Interpolate(t76)
	}
	return t76
}

func npl75ToITS90(t float64) float64 {
	switch {
	case t <= npl75LowMax:
		return he458ToITS90(npl75ToHe458Table.Interpolate(t))
	case t >= npl75HighMin:
		return ipts68ToITS90(npl75ToIPTS68Table.Interpolate(t))
	default:
		return t
	}
}

func xisuToITS90(t float64) float64 {
	return npl75ToITS90(xisuToNPL75Table.Interpolate(t))
}
