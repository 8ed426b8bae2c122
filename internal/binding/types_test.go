package binding

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		value fmt.Stringer
		want  string
	}{
		{NatureBasic, "basic"},
		{NatureAssociation, "association"},
		{AccessProperty, "property"},
		{GenerationInsert, "INSERT"},
		{VersionSourceDB, "DB"},
		{TemporalTimestamp, "TIMESTAMP"},
		{EnumOrdinal, "ORDINAL"},
		{ResolverDefault, "default"},
		{Nature(7), "Nature(7)"},
		{ResolverKind(-1), "ResolverKind(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestParseNature(t *testing.T) {
	for _, n := range []Nature{NatureBasic, NatureEmbedded, NatureAssociation} {
		got, err := ParseNature(" " + n.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	got, err := ParseNature("")
	require.NoError(t, err)
	assert.Equal(t, NatureBasic, got)

	_, err = ParseNature("collection")
	assert.Error(t, err)
}

func TestParseAccessStrategy(t *testing.T) {
	got, err := ParseAccessStrategy("PROPERTY")
	require.NoError(t, err)
	assert.Equal(t, AccessProperty, got)

	_, err = ParseAccessStrategy("method")
	assert.Error(t, err)
}
