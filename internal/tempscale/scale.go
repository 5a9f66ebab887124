package tempscale

import (
	"fmt"
	"strings"
)

// Scale identifies a temperature scale.
type Scale int

// Supported scales. ScaleNone means no conversion applies.
const (
	ScaleNone Scale = iota
	ScaleITS27
	ScaleIPTS48
	ScaleIPTS68
	ScaleITS90
	ScaleEPT76
	ScaleNBS39
	ScaleNBS55
	ScaleNPL61
	ScaleNPL75
	ScaleXISU
	ScaleHe458
	ScaleHe362
	ScalePRMI54
	ScalePSU54
)

var scaleNames = map[Scale]string{
	ScaleITS27:  "ITS-27",
	ScaleIPTS48: "IPTS-48",
	ScaleIPTS68: "IPTS-68",
	ScaleITS90:  "ITS-90",
	ScaleEPT76:  "EPT-76",
	ScaleNBS39:  "NBS-39",
	ScaleNBS55:  "NBS-55",
	ScaleNPL61:  "NPL-61",
	ScaleNPL75:  "NPL-75",
	ScaleXISU:   "XISU",
	ScaleHe458:  "He4-58",
	ScaleHe362:  "He3-62",
	ScalePRMI54: "PRMI-54",
	ScalePSU54:  "PSU-54",
}

// scalesByName is keyed by upper-cased name.
var scalesByName = func() map[string]Scale {
	m := make(map[string]Scale, len(scaleNames))
	for s, name := range scaleNames {
		m[strings.ToUpper(name)] = s
	}
	return m
}()

// Scales returns every named scale in declaration order.
func Scales() []Scale {
	out := make([]Scale, 0, len(scaleNames))
	for s := ScaleITS27; s <= ScalePSU54; s++ {
		out = append(out, s)
	}
	return out
}

// ParseScale resolves a scale name case-insensitively, ignoring surrounding
// whitespace. Unknown or empty names report false.
func ParseScale(name string) (Scale, bool) {
	s, ok := scalesByName[strings.ToUpper(strings.TrimSpace(name))]
	return s, ok
}

func (s Scale) String() string {
	if name, ok := scaleNames[s]; ok {
		return name
	}
	if s == ScaleNone {
		return ""
	}
	return fmt.Sprintf("Scale(%d)", int(s))
}

// MarshalText encodes the scale by name; ScaleNone encodes as empty.
func (s Scale) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts any name ParseScale accepts, or empty for ScaleNone.
func (s *Scale) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*s = ScaleNone
		return nil
	}
	v, ok := ParseScale(string(b))
	if !ok {
		return fmt.Errorf("unknown temperature scale %q", string(b))
	}
	*s = v
	return nil
}
