package render

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hongjr03/numfmt/internal/locale"
)

func formatGeneralString(value float64) string {
	var b strings.Builder
	FormatGeneral(&b, value, locale.DefaultLocale())
	return b.String()
}

func TestFormatGeneralZero(t *testing.T) {
	assert.Equal(t, "0", formatGeneralString(0))
}

func TestFormatGeneralNaN(t *testing.T) {
	assert.Equal(t, "NaN", formatGeneralString(math.NaN()))
}

func TestFormatGeneralInfinity(t *testing.T) {
	assert.Equal(t, "∞", formatGeneralString(math.Inf(1)))
}

func TestFormatGeneralExactIntegers(t *testing.T) {
	assert.Equal(t, "42", formatGeneralString(42))
	assert.Equal(t, "-42", formatGeneralString(-42))
	assert.Equal(t, "1000000", formatGeneralString(1000000))
}

func TestFormatGeneralExactDecimal(t *testing.T) {
	assert.Equal(t, "0.5", formatGeneralString(0.5))
	assert.Equal(t, "0.25", formatGeneralString(0.25))
	assert.Equal(t, "3.5", formatGeneralString(3.5))
	assert.Equal(t, "-100.25", formatGeneralString(-100.25))
}
