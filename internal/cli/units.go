// internal/cli/units.go
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

var concUnits = map[string]float64{
	"m":  1,
	"mm": 1e-3,
	"um": 1e-6,
	"µm": 1e-6,
	"μm": 1e-6,
	"nm": 1e-9,
}

// ParseConc parses "50mM", "250nM", "0.5uM", "0.05M" → mol/L. A bare
// number is read in defaultUnit.
func ParseConc(s, defaultUnit string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.' || s[i] == '-' || s[i] == '+' || s[i] == 'e') {
		// 'e' only counts as an exponent when a digit or sign follows
		if s[i] == 'e' && (i+1 >= len(s) || !strings.ContainsRune("0123456789+-", rune(s[i+1]))) {
			break
		}
		i++
	}
	num, unit := s[:i], strings.TrimSpace(s[i:])
	if num == "" {
		return 0, fmt.Errorf("invalid concentration %q", s)
	}
	val, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid concentration %q: %w", s, err)
	}
	if unit == "" {
		unit = defaultUnit
	}
	f, ok := concUnits[unit]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q in %q", unit, s)
	}
	if val <= 0 {
		return 0, fmt.Errorf("concentration must be > 0 (got %q)", s)
	}
	return val * f, nil
}

// ParsePrimerConcNM parses a primer concentration, nM when unitless.
func ParsePrimerConcNM(s string) (float64, error) {
	m, err := ParseConc(s, "nm")
	return m * 1e9, err
}

// ParseSaltMolar parses a monovalent salt concentration, mM when unitless.
func ParseSaltMolar(s string) (float64, error) {
	return ParseConc(s, "mm")
}
