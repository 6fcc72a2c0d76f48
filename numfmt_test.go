package numfmt

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGroupedDecimal(t *testing.T) {
	out, err := Format("#,##0.00", NumberValue(1234.56))
	require.NoError(t, err)
	assert.Equal(t, "1,234.56", out)
}

func TestFormatPercent(t *testing.T) {
	out, err := Format("0.00%", NumberValue(0.4567))
	require.NoError(t, err)
	assert.Equal(t, "45.67%", out)
}

func TestFormatNegativeParens(t *testing.T) {
	out, err := Format("#,##0;(#,##0)", NumberValue(-1234))
	require.NoError(t, err)
	assert.Equal(t, "(1,234)", out)
}

func TestFormatQuotedLiteralsAroundText(t *testing.T) {
	out, err := Format(`"foo" @ "bar"`, TextValue("baz"))
	require.NoError(t, err)
	assert.Equal(t, "foo baz bar", out)
}

func TestFormatDate(t *testing.T) {
	date := NewDateValue(2024).WithMonth(4).WithDay(5)
	out, err := Format("yyyy-mm-dd", DateVal(date))
	require.NoError(t, err)
	assert.Equal(t, "2024-04-05", out)
}

func TestFormatColorByCondition(t *testing.T) {
	pat := "[Red]#,##0;[Blue]-#,##0"

	out, err := Format(pat, NumberValue(42))
	require.NoError(t, err)
	assert.Equal(t, "42", out)
	color, err := FormatColor(pat, NumberValue(42), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, color)
	assert.Equal(t, "red", color.Name)

	out, err = Format(pat, NumberValue(-42))
	require.NoError(t, err)
	assert.Equal(t, "-42", out)
	color, err = FormatColor(pat, NumberValue(-42), DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, color)
	assert.Equal(t, "blue", color.Name)
}

func TestFormatBigIntOverflow(t *testing.T) {
	value, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	out, err := FormatWithOptions("#,##0", BigIntValue(value), DefaultOptions().WithBigIntErrorNumber(true))
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", out)

	out, err = Format("#,##0", BigIntValue(value))
	require.NoError(t, err)
	assert.Equal(t, "######", out)
}

func TestFormatCommaDemotedToLiteral(t *testing.T) {
	out, err := Format("x,0", NumberValue(1234.5677))
	require.NoError(t, err)
	assert.Equal(t, "x,1235", out)
}

func TestFormatVolatileMinusOnConditionalSection(t *testing.T) {
	out, err := Format("[>=0]0;0", NumberValue(-7))
	require.NoError(t, err)
	assert.Equal(t, "-7", out)
}

func TestFormatExponential(t *testing.T) {
	out, err := Format("0.00E+00", NumberValue(12345.678))
	require.NoError(t, err)
	assert.Equal(t, "1.23E+04", out)
}

func TestFormatNull(t *testing.T) {
	out, err := Format("0.00", Null())
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestFormatBoolean(t *testing.T) {
	out, err := Format("@", BooleanValue(true))
	require.NoError(t, err)
	assert.Equal(t, "TRUE", out)

	out, err = Format("@", BooleanValue(false))
	require.NoError(t, err)
	assert.Equal(t, "FALSE", out)
}
