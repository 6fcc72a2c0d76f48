package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongjr03/numfmt/internal/token"
)

func parseString(t *testing.T, pattern string) *Section {
	t.Helper()
	toks, err := token.Tokenize(pattern)
	require.NoError(t, err)
	sec, err := Parse(toks)
	require.NoError(t, err)
	return sec
}

func TestParseGroupedInteger(t *testing.T) {
	sec := parseString(t, "#,##0.00")
	assert.True(t, sec.Grouping)
	assert.Equal(t, 2, sec.FracMin)
	assert.Equal(t, 2, sec.FracMax)
}

func TestParsePercent(t *testing.T) {
	sec := parseString(t, "0.00%")
	assert.True(t, sec.Percent)
	assert.Equal(t, 100.0, sec.Scale)
}

func TestParseScaleByThousand(t *testing.T) {
	sec := parseString(t, "#,##0,")
	assert.Equal(t, 0.001, sec.Scale)
}

func TestParseFraction(t *testing.T) {
	sec := parseString(t, "# ?/?")
	assert.True(t, sec.Fractions)
	assert.Equal(t, 1, sec.NumMax)
	assert.Equal(t, 1, sec.DenMax)
}

func TestParseDateMinuteDisambiguation(t *testing.T) {
	sec := parseString(t, "h:mm:ss")
	require.True(t, sec.Date.Contains(UnitMinute))
	var sawMinute bool
	for _, tk := range sec.Tokens {
		if tk.Kind == STDate && tk.Date.Kind == DateMinute {
			sawMinute = true
		}
	}
	assert.True(t, sawMinute)
}

func TestParseMonthNotMinuteWithoutHourContext(t *testing.T) {
	sec := parseString(t, "mmmm")
	var sawMonth bool
	for _, tk := range sec.Tokens {
		if tk.Kind == STDate && tk.Date.Kind == DateMonthName {
			sawMonth = true
		}
	}
	assert.True(t, sawMonth)
}

func TestParseExponential(t *testing.T) {
	sec := parseString(t, "0.00E+00")
	assert.True(t, sec.Exponential)
	assert.True(t, sec.ExpPlus)
}

func TestParseConditionOnlySectionRendersText(t *testing.T) {
	sec := parseString(t, "[Red]")
	var sawText bool
	for _, tk := range sec.Tokens {
		if tk.Kind == STToken && tk.Token.Kind == token.KindText {
			sawText = true
		}
	}
	assert.True(t, sawText)
}

func TestParseFractionWithoutDenominatorIsInvalid(t *testing.T) {
	toks, err := token.Tokenize("0/")
	require.NoError(t, err)
	_, err = Parse(toks)
	assert.Error(t, err)
}
