package tempscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func year(y int) *int { return &y }

func TestSelectScale(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		year     *int
		declared string
		want     Scale
	}{
		{"declared wins over year", 300, year(1930), "IPTS-68", ScaleIPTS68},
		{"declared case-insensitive", 4, nil, "he4-58", ScaleHe458},
		{"declared ITS-90", 300, year(1950), "ITS-90", ScaleITS90},
		{"declared XISU", 20, nil, "XISU", ScaleXISU},
		{"unknown declared falls back to year", 300, year(1930), "He4-36", ScaleITS27},
		{"no year no scale", 300, nil, "", ScaleNone},
		{"before 1927", 300, year(1926), "", ScaleNone},
		{"1990 is ITS-90", 300, year(1990), "", ScaleITS90},
		{"after 1990", 4, year(2016), "", ScaleITS90},

		{"rule 1 ITS-27", 93, year(1947), "", ScaleITS27},
		{"rule 1 boundary year", 93, year(1927), "", ScaleITS27},
		{"rule 2 IPTS-48", 93, year(1948), "", ScaleIPTS48},
		{"rule 2 last year", 500, year(1967), "", ScaleIPTS48},
		{"rule 3 window", 14, year(1968), "", ScaleIPTS68},
		{"rule 3 before rule 7", 20, year(1968), "", ScaleIPTS68},
		{"rule 3 high temperature", 27.5, year(1985), "", ScaleIPTS68},
		{"rule 4 low temperature", 16, year(1939), "", ScaleNBS39},
		{"rule 4 mid window", 10, year(1975), "", ScaleNBS39},
		{"rule 4 excludes 5 K", 5, year(1960), "", ScaleHe458},
		{"rule 5 PRMI-54", 50, year(1954), "", ScalePRMI54},
		{"rule 4 beats rule 5 at 16 K", 16, year(1954), "", ScaleNBS39},
		{"rule 6 NBS-55", 15, year(1956), "", ScaleNBS55},
		{"rule 6 last year", 92.9, year(1960), "", ScaleNBS55},
		{"rule 7 NPL-61", 14, year(1961), "", ScaleNPL61},
		{"rule 8 He4-58", 4.2, year(1958), "", ScaleHe458},
		{"rule 9 EPT-76", 20, year(1976), "", ScaleEPT76},
		{"rule 9 upper bound", 27, year(1980), "", ScaleEPT76},

		{"no rule: cold pre-1939", 50, year(1930), "", ScaleNone},
		{"no rule: helium range before 1958", 4, year(1957), "", ScaleNone},
		{"no rule: hydrogen range before 1939", 5.5, year(1938), "", ScaleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectScale(tt.temp, tt.year, tt.declared))
		})
	}
}

func TestSelectScale_PSU54OnlyByDeclaration(t *testing.T) {
	for temp := 17.0; temp < 93; temp++ {
		assert.NotEqual(t, ScalePSU54, SelectScale(temp, year(1954), ""))
	}
	assert.Equal(t, ScalePSU54, SelectScale(50, year(1954), "PSU-54"))
}
