package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSinglePartitionGetsNegativeAndZeroClones(t *testing.T) {
	pat, err := Parse("#,##0.00")
	require.NoError(t, err)
	require.Len(t, pat.Partitions, 4)
	assert.NotNil(t, pat.Partitions[0].Condition)
	assert.NotNil(t, pat.Partitions[1].Condition)
	assert.Nil(t, pat.Partitions[2].Condition)
	assert.True(t, pat.Partitions[3].Text)
}

func TestParseTwoPartitionsPositiveNegative(t *testing.T) {
	pat, err := Parse("#,##0;(#,##0)")
	require.NoError(t, err)
	require.Len(t, pat.Partitions, 4)
	assert.True(t, pat.Partitions[1].Parens)
}

func TestParseFourPartitions(t *testing.T) {
	pat, err := Parse("0.00;(0.00);\"-\";@")
	require.NoError(t, err)
	require.Len(t, pat.Partitions, 4)
	assert.True(t, pat.Partitions[3].Text)
}

func TestParseConditionalTwoPartitions(t *testing.T) {
	pat, err := Parse("[>=100]0.0,\"k\";0.0")
	require.NoError(t, err)
	require.Len(t, pat.Partitions, 2)
	require.NotNil(t, pat.Partitions[0].Condition)
}

func TestParseLocaleOverridePropagates(t *testing.T) {
	pat, err := Parse("[$-409]0.00")
	require.NoError(t, err)
	assert.True(t, pat.HasLocale)
	assert.Equal(t, "409", pat.Locale)
}

func TestParseTooManyPartitionsErrors(t *testing.T) {
	_, err := Parse("0;0;0;0;0")
	assert.Error(t, err)
}

func TestCacheResolveMemoizesValidPattern(t *testing.T) {
	c := NewCache()
	first, err := c.Resolve("0.00", true)
	require.NoError(t, err)
	second, err := c.Resolve("0.00", true)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCacheResolveInvalidPatternFallsBackWhenNotThrowing(t *testing.T) {
	c := NewCache()
	pat, err := c.Resolve("0/", false)
	require.NoError(t, err)
	require.Len(t, pat.Partitions, 4)
	assert.NotEmpty(t, pat.Partitions[0].Error)
}

func TestCacheResolveInvalidPatternThrows(t *testing.T) {
	c := NewCache()
	_, err := c.Resolve("0/", true)
	assert.Error(t, err)
}
