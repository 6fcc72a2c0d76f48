package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/hongjr03/numfmt/internal/locale"
	"github.com/hongjr03/numfmt/internal/mathutil"
)

// FormatGeneral renders value the way an unformatted "General" cell does:
// an exact integer prints with no decimal point, small-magnitude values
// print as a fixed decimal, and values that would otherwise need more than
// eleven significant digits fall back to exponential notation.
func FormatGeneral(buffer *strings.Builder, value float64, loc *locale.Locale) {
	if math.IsNaN(value) {
		buffer.WriteString(loc.NaN)
		return
	}
	if math.IsInf(value, 0) {
		buffer.WriteString(loc.Infinity)
		return
	}
	if value == 0 {
		buffer.WriteString("0")
		return
	}

	abs := math.Abs(value)
	if abs == math.Trunc(abs) && abs < 1e15 {
		buffer.WriteString(fixLocale(strconv.FormatFloat(value, 'f', -1, 64), loc))
		return
	}

	exp := mathutil.GetExponent(abs, 1)
	numDig := mathutil.NumDec(value, true)

	switch {
	case exp >= -4 && exp <= -1:
		text := strconv.FormatFloat(value, 'f', -exp+15, 64)
		text = trimTrailingZeros(text)
		buffer.WriteString(fixLocale(text, loc))

	case exp == 10:
		text := strconv.FormatFloat(value, 'f', -1, 64)
		if len(text) > 12 {
			text = text[:12]
		}
		buffer.WriteString(fixLocale(text, loc))

	case exp >= -9 && exp <= 9 && numDig.Total <= 11:
		text := strconv.FormatFloat(value, 'f', numDig.Frac, 64)
		text = trimTrailingZeros(text)
		buffer.WriteString(fixLocale(text, loc))

	case exp == 9:
		buffer.WriteString(fixLocale(strconv.FormatFloat(math.Trunc(value), 'f', -1, 64), loc))

	case exp >= 0 && exp < 9:
		places := 9 - exp
		text := strconv.FormatFloat(value, 'f', places, 64)
		text = trimTrailingZeros(text)
		buffer.WriteString(fixLocale(text, loc))

	case numDig.Total >= 12:
		buffer.WriteString(exponentString(value, exp, loc))

	default:
		text := strconv.FormatFloat(value, 'f', 9, 64)
		text = trimTrailingZeros(text)
		buffer.WriteString(fixLocale(text, loc))
	}
}

// fixLocale swaps the "." a strconv call always produces for the locale's
// own decimal separator, unless the locale already uses a plain period.
func fixLocale(s string, loc *locale.Locale) string {
	if loc.Decimal == "." {
		return s
	}
	return strings.ReplaceAll(s, ".", loc.Decimal)
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// exponentString renders value in "d.dddE+dd" form: a single leading
// significant digit, a locale-decimal fraction, the locale's exponent
// marker, and a sign-and-two-digit exponent.
func exponentString(value float64, exp int, loc *locale.Locale) string {
	mantissa := mathutil.GetSignificand(value, exp)
	rounded := mathutil.Round(mantissa, 5)
	if math.Abs(rounded) >= 10.0 && mantissa != 1.0 {
		mantissa = rounded / 10.0
		exp++
	} else {
		mantissa = rounded
	}

	mantissaText := trimTrailingZeros(strconv.FormatFloat(mantissa, 'f', 5, 64))
	mantissaText = fixLocale(mantissaText, loc)

	sign := loc.Positive
	if exp < 0 {
		sign = loc.Negative
	}

	var b strings.Builder
	b.WriteString(mantissaText)
	b.WriteString(loc.Exponent)
	b.WriteString(sign)
	b.WriteString(strconv.Itoa(iabs(exp) / 10))
	b.WriteString(strconv.Itoa(iabs(exp) % 10))
	return b.String()
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
