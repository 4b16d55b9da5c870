package report

import (
	"fmt"
	"strconv"

	"github.com/inhies/go-bytesize"
)

// Unit is a display unit token. Binary units are powers of 1024,
// decimal units powers of 1000; both are driven off the byte size of
// the unit so that KiB-denominated and byte-denominated counters
// convert the same way.
type Unit string

const (
	UnitKibi Unit = "Ki"
	UnitKilo Unit = "K"
	UnitMebi Unit = "Mi"
	UnitMega Unit = "M"
	UnitGibi Unit = "Gi"
	UnitGiga Unit = "G"
)

// DefaultUnit is used when no unit flag is given.
const DefaultUnit = UnitMebi

// unitBytes maps each unit to its size in bytes.
var unitBytes = map[Unit]float64{
	UnitKibi: 1 << 10,
	UnitKilo: 1e3,
	UnitMebi: 1 << 20,
	UnitMega: 1e6,
	UnitGibi: 1 << 30,
	UnitGiga: 1e9,
}

// unitSuffix maps each unit to its display suffix. Binary units get the
// bare prefix letter, decimal units the letter plus B, except Ki which
// keeps its full token to stay distinguishable from K.
var unitSuffix = map[Unit]string{
	UnitKibi: "Ki",
	UnitKilo: "kB",
	UnitMebi: "M",
	UnitMega: "MB",
	UnitGibi: "G",
	UnitGiga: "GB",
}

// Decimals returns how many fractional digits a unit displays. The
// giga tier gets one digit to avoid excessive quantization; everything
// finer displays whole numbers.
func (u Unit) Decimals() int {
	switch u {
	case UnitGibi, UnitGiga:
		return 1
	}
	return 0
}

// Suffix returns the display suffix for a unit.
func (u Unit) Suffix() string {
	return unitSuffix[u]
}

func (u Unit) valid() bool {
	_, ok := unitBytes[u]
	return ok
}

// ConvertKiB converts a KiB-denominated counter to the given unit.
func ConvertKiB(kib uint64, u Unit) (float64, error) {
	return ConvertBytes(kib<<10, u)
}

// ConvertBytes converts a byte-denominated counter to the given unit.
// An unrecognized unit is an error, never a silent fallback.
func ConvertBytes(b uint64, u Unit) (float64, error) {
	size, ok := unitBytes[u]
	if !ok {
		return 0, fmt.Errorf("unknown unit: %v", u)
	}
	return float64(b) / size, nil
}

// formatUnit converts a byte count and renders it with the unit's
// rounding tier, appending the suffix unless noUnit is set.
func formatUnit(b uint64, u Unit, noUnit bool) (string, error) {
	v, err := ConvertBytes(b, u)
	if err != nil {
		return "", err
	}
	s := strconv.FormatFloat(v, 'f', u.Decimals(), 64)
	if !noUnit {
		s += u.Suffix()
	}
	return s, nil
}

// decimalSuffixes is the autorange ladder for --si mode.
var decimalSuffixes = []string{"B", "kB", "MB", "GB", "TB"}

// Human autoranges a byte count for display. Binary mode leans on
// go-bytesize; decimal mode walks the 1000 ladder by hand since
// bytesize only speaks powers of 1024.
func Human(b uint64, si bool) string {
	if !si {
		return bytesize.New(float64(b)).String()
	}
	v := float64(b)
	i := 0
	for v >= 1000 && i < len(decimalSuffixes)-1 {
		v /= 1000
		i++
	}
	return fmt.Sprintf("%.2f%s", v, decimalSuffixes[i])
}
