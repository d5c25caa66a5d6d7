package treefill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClasses_CoveredByConverterTable(t *testing.T) {
	table := converterTable()
	all := Classes()
	require.Len(t, all, 13)
	assert.Len(t, table, len(all))
	for _, c := range all {
		assert.Contains(t, table, c)
	}
}

func TestParseClass(t *testing.T) {
	c, ok := ParseClass("MissingET")
	require.True(t, ok)
	assert.Equal(t, ClassMissingET, c)

	_, ok = ParseClass("missinget")
	assert.False(t, ok)

	_, ok = ParseClass("Calorimeter")
	assert.False(t, ok)
}
