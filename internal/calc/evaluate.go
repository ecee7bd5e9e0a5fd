package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"calcpad/internal/domain"
)

// Evaluate applies op to the operands a and b held as display text.
//
// Text that does not parse as a number becomes NaN and propagates through
// the arithmetic. Division by a numeric zero yields domain.ErrorText. With no
// operation, b is returned unchanged.
func Evaluate(a, b string, op domain.Operation) string {
	if !op.Valid() {
		return b
	}
	x, y := parseNumber(a), parseNumber(b)
	switch op {
	case domain.OpAdd:
		return FormatNumber(x + y)
	case domain.OpSubtract:
		return FormatNumber(x - y)
	case domain.OpMultiply:
		return FormatNumber(x * y)
	default:
		if y == 0 {
			return domain.ErrorText
		}
		return FormatNumber(x / y)
	}
}

// parseNumber reads s as a decimal float64, returning NaN when it is not
// one. "Infinity" and "-Infinity", as rendered by FormatNumber, read back as
// the infinities; other spellings ParseFloat accepts ("inf", hex, "nan")
// are NaN. Out-of-range input keeps the ±Inf or 0 that ParseFloat reports.
func parseNumber(s string) float64 {
	switch s {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if !isDecimal(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return f
	}
	return math.NaN()
}

// isDecimal reports whether s uses only decimal float syntax characters.
func isDecimal(s string) bool {
	digits := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return digits
}

// FormatNumber renders f as the shortest decimal that round-trips, using
// plain notation for 1e-6 <= |f| < 1e21 and exponent notation ("1e+21",
// "1.5e-7") outside that range. NaN and the infinities render as "NaN",
// "Infinity" and "-Infinity"; negative zero renders as "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// FormatFloat pads the exponent to two digits ("1.5e-07").
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
