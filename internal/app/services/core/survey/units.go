package survey

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"intake-service/internal/pkg/constvars"
)

var (
	leadingNumberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	feetInchesPattern    = regexp.MustCompile(`(\d+)\s*ft\s*(\d+)\s*in`)
)

// parseLeadingNumber reads the number at the start of text, ignoring any
// trailing characters ("68 kgs" -> 68). ok is false when text does not start
// with a finite number.
func parseLeadingNumber(text string) (float64, bool) {
	match := leadingNumberPattern.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// ParseWeightPounds converts a typed weight such as "150 lbs" or "68 kg" to
// pounds. Kilograms are rounded to the nearest whole pound; a bare number is
// taken as pounds. It returns nil when no number can be read.
func ParseWeightPounds(text string) *float64 {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "kg"):
		kilograms, ok := parseLeadingNumber(strings.Replace(lower, "kg", "", 1))
		if !ok {
			return nil
		}
		pounds := math.Round(kilograms * constvars.PoundsPerKilogram)
		return &pounds
	case strings.Contains(lower, "lbs"):
		pounds, ok := parseLeadingNumber(strings.Replace(lower, "lbs", "", 1))
		if !ok {
			return nil
		}
		return &pounds
	default:
		pounds, ok := parseLeadingNumber(lower)
		if !ok {
			return nil
		}
		return &pounds
	}
}

// ParseHeightInches converts a typed height such as "5 ft 10 in" or
// "178 cm" to whole inches. It returns nil for anything else.
func ParseHeightInches(text string) *int {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "ft") && strings.Contains(lower, "in") {
		parts := feetInchesPattern.FindStringSubmatch(lower)
		if parts == nil {
			return nil
		}
		feet, feetErr := strconv.Atoi(parts[1])
		inches, inchesErr := strconv.Atoi(parts[2])
		if feetErr != nil || inchesErr != nil {
			return nil
		}
		total := feet*12 + inches
		return &total
	}

	if strings.Contains(lower, "cm") {
		centimeters, ok := parseLeadingNumber(strings.Replace(lower, "cm", "", 1))
		if !ok {
			return nil
		}
		total := int(math.Round(centimeters / constvars.CentimetersPerInch))
		return &total
	}

	return nil
}
