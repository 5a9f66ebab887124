package tempscale

const (
	// firstScaleYear is when ITS-27 was adopted; earlier values are not corrected.
	firstScaleYear = 1927
	// its90Year is when ITS-90 took effect.
	its90Year = 1990
)

// SelectScale decides which scale a temperature (already in kelvin) was most
// likely reported on.
//
// A recognised declared scale always wins, regardless of year. Without one the
// year decides: values from its90Year onward are ITS-90 already, values with
// no year or before firstScaleYear get ScaleNone. Otherwise the first matching
// rule applies:
//
//  1. year < 1948, T ≥ 93                                 ITS-27
//  2. year < 1968, T ≥ 93                                 IPTS-48
//  3. 1968 ≤ year < 1976 with T ≥ 14, or year ≥ 1968 with T > 27   IPTS-68
//  4. 1939 ≤ year < 1955 with T ≤ 16, or 1939 ≤ year < 1976 with 5 < T < 14   NBS-39
//  5. year = 1954, 16 < T < 93                            PRMI-54
//  6. 1955 ≤ year < 1961, 14 ≤ T < 93                     NBS-55
//  7. 1961 ≤ year < 1968, 14 ≤ T < 93                     NPL-61
//  8. year ≥ 1958, T ≤ 5                                  He4-58
//  9. year ≥ 1976, 5 < T ≤ 27                             EPT-76
//
// PSU-54 shares rule 5's window with PRMI-54 and is only reachable by
// declaration.
func SelectScale(t float64, year *int, declared string) Scale {
	if s, ok := ParseScale(declared); ok {
		return s
	}
	if year == nil || *year < firstScaleYear {
		return ScaleNone
	}
	y := *year
	if y >= its90Year {
		return ScaleITS90
	}

	switch {
	case y < 1948 && t >= 93:
		return ScaleITS27
	case y < 1968 && t >= 93:
		return ScaleIPTS48
	case (y >= 1968 && y < 1976 && t >= 14) || (y >= 1968 && t > 27):
		return ScaleIPTS68
	case (y >= 1939 && y < 1955 && t <= 16) || (y >= 1939 && y < 1976 && t > 5 && t < 14):
		return ScaleNBS39
	case y == 1954 && t > 16 && t < 93:
		return ScalePRMI54
	case y >= 1955 && y < 1961 && t >= 14 && t < 93:
		return ScaleNBS55
	case y >= 1961 && y < 1968 && t >= 14 && t < 93:
		return ScaleNPL61
	case y >= 1958 && t <= 5:
		return ScaleHe458
	case y >= 1976 && t > 5 && t <= 27:
		return ScaleEPT76
	}
	return ScaleNone
}
