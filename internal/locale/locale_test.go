package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLocale(t *testing.T) {
	d := DefaultLocale()
	assert.Equal(t, ".", d.Decimal)
	assert.Equal(t, "TRUE", d.BoolTrue())
	assert.Equal(t, "FALSE", d.BoolFalse())
}

func TestGetLocaleByTag(t *testing.T) {
	fr := GetLocale("fr-FR")
	require.NotNil(t, fr)
	assert.Equal(t, ",", fr.Decimal)
}

func TestGetLocaleByBareLanguage(t *testing.T) {
	de := GetLocale("de")
	require.NotNil(t, de)
	assert.Equal(t, ",", de.Decimal)
}

func TestGetLocaleUnknownReturnsNil(t *testing.T) {
	assert.Nil(t, GetLocale("xx-ZZ"))
}

func TestResolveCodeHexLCID(t *testing.T) {
	got, ok := ResolveCode("409")
	require.True(t, ok)
	assert.Equal(t, "en_US", got)
}

func TestGetLocaleOrDefaultFallsBack(t *testing.T) {
	loc := GetLocaleOrDefault("")
	assert.Same(t, DefaultLocale(), loc)
}
