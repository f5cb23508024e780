package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_RoundTrip(t *testing.T) {
	original := StringList{"A", "B", "C"}

	value, err := original.Value()
	require.NoError(t, err)

	var loaded StringList
	require.NoError(t, loaded.Scan(value))

	assert.Equal(t, StringList{"A", "B", "C"}, loaded)
}

func TestStringList_ValueNil(t *testing.T) {
	var l StringList

	value, err := l.Value()
	require.NoError(t, err)

	assert.Equal(t, []byte("[]"), value)
}

func TestStringList_ScanMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"truncated json", []byte(`["A","B"`)},
		{"not an array", []byte(`{"a":1}`)},
		{"garbage string", "not json at all"},
		{"json null", []byte(`null`)},
		{"sql null", nil},
		{"unexpected type", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			require.NoError(t, l.Scan(tt.input))
			assert.Equal(t, StringList{}, l)
		})
	}
}

func TestStringList_ScanPreservesOrder(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["z","a","m"]`)))
	assert.Equal(t, StringList{"z", "a", "m"}, l)
}
