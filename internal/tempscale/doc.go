// Package tempscale converts temperatures reported under historical
// temperature scales into ITS-90 kelvin.
//
// # Scales
//
// Literature values predating 1990 were measured on whatever scale was in force
// (or in use by a given laboratory) at the time. The supported scales are:
//
//	ITS-27, IPTS-48, IPTS-68   international practical scales
//	ITS-90                     the target scale (identity)
//	EPT-76                     provisional 0.5 K – 30 K scale
//	NBS-39, NBS-55             US National Bureau of Standards laboratory scales
//	NPL-61, NPL-75             UK National Physical Laboratory scales
//	PRMI-54, PSU-54            Soviet laboratory scales from 1954
//	He4-58, He3-62             helium vapour-pressure scales
//	XISU                       magnetic thermometry scale, converted via NPL-75
//
// # Conversion Tables
//
// Each direct conversion is a piecewise-linear table of (reference, delta)
// pairs where delta is target − source at the reference temperature. Values
// outside a table's range cannot be corrected and pass through unchanged.
// Some scales have no direct ITS-90 table and are chained through an
// intermediate scale:
//
//	NBS-39 → NPL-61 → ITS-90
//	He4-58 → EPT-76 → ITS-90 (only when the EPT-76 value is ≥ 5 K)
//	XISU   → NPL-75 → ITS-90
//	NPL-75 → He4-58 → ITS-90 (≤ 4.2221 K)
//	NPL-75 → IPTS-68 → ITS-90 (≥ 13.80349 K)
//
// IPTS-68 above 1337.58 K uses the closed form
//
//	T90 = sqrt(T68/c + 1/(4c²)) − 1/(2c), c = 1.398e-7
//
// # Scale Selection
//
// A declared scale always wins. Without one, the publication year and the
// temperature choose the scale in force; see [SelectScale] for the ordered
// rules. Values from 1990 onward are assumed to already be ITS-90 and values
// before 1927 predate any international scale, so both pass through.
//
// # Missing Values
//
// A NaN input produces the sentinel [MissingValue] (−999.0). No supported
// conversion yields that value for a physical temperature, so downstream
// consumers can test for it directly.
//
// All tables are package-level immutable data; every function in this
// package is safe for concurrent use.
package tempscale
