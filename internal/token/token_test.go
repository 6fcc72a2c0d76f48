package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeGroupComma(t *testing.T) {
	toks, err := Tokenize("#,##0")
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, KindGroup, toks[1].Kind)
}

func TestTokenizeScaleComma(t *testing.T) {
	toks, err := Tokenize("#,")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, KindScale, toks[1].Kind)
}

func TestTokenizeScaleCommaRetroactiveGroup(t *testing.T) {
	// The comma before a literal space is ambiguous (group or scale)
	// until a later digit placeholder in the same section resolves it
	// to Group.
	toks, err := Tokenize("#, #0")
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, KindGroup, toks[1].Kind)
}

func TestTokenizeScaleCommaAtBreak(t *testing.T) {
	toks, err := Tokenize("0,;0")
	require.NoError(t, err)
	assert.Equal(t, KindScale, toks[1].Kind)
}

func TestTokenizeGeneral(t *testing.T) {
	toks, err := Tokenize("General")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, KindGeneral, toks[0].Kind)
}

func TestTokenizeDateTimeRuns(t *testing.T) {
	toks, err := Tokenize("mmmm")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, KindDateTime, toks[0].Kind)
	assert.Equal(t, "mmmm", toks[0].Text)
}

func TestTokenizeAmPmRequiresThreeChars(t *testing.T) {
	_, err := Tokenize("aa")
	// "aa" is not a valid am/pm marker and not a 3+ run either; each 'a'
	// falls through to the fallback char parser instead of erroring.
	require.NoError(t, err)
}

func TestTokenizeCondition(t *testing.T) {
	toks, err := Tokenize("[>=100]0")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	require.NotNil(t, toks[0].Condition)
	assert.Equal(t, OpGreaterEqual, toks[0].Condition.Operator)
	assert.Equal(t, 100.0, toks[0].Condition.Operand)
}

func TestTokenizeColorNamed(t *testing.T) {
	toks, err := Tokenize("[Red]0")
	require.NoError(t, err)
	assert.Equal(t, KindColor, toks[0].Kind)
	assert.Equal(t, "red", toks[0].Text)
}

func TestTokenizeColorIndex(t *testing.T) {
	toks, err := Tokenize("[Color 5]0")
	require.NoError(t, err)
	assert.Equal(t, KindColor, toks[0].Kind)
}

func TestTokenizeEscaped(t *testing.T) {
	toks, err := Tokenize(`\#`)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, KindEscaped, toks[0].Kind)
	assert.Equal(t, '#', toks[0].Char)
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks, err := Tokenize(`"abc"`)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, KindString, toks[0].Kind)
	assert.Equal(t, "abc", toks[0].Text)
}

func TestTokenizeExponent(t *testing.T) {
	toks, err := Tokenize("0.00E+00")
	require.NoError(t, err)
	var sawExp bool
	for _, tk := range toks {
		if tk.Kind == KindExp {
			sawExp = true
			assert.Equal(t, "+", tk.Text)
		}
	}
	assert.True(t, sawExp)
}

func TestTokenizeUnterminatedStringBecomesErrorToken(t *testing.T) {
	toks, err := Tokenize(`"abc`)
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	assert.Equal(t, KindError, toks[0].Kind)
}
