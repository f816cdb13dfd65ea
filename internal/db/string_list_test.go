package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	value, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, value)

	empty, err := StringList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)

	var nilList StringList
	nilValue, err := nilList.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", nilValue)
}

func TestStringListScan(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan(`["x","y"]`))
	assert.Equal(t, StringList{"x", "y"}, list)

	require.NoError(t, list.Scan([]byte(`[]`)))
	assert.Equal(t, StringList{}, list)

	require.NoError(t, list.Scan(nil))
	assert.Equal(t, StringList{}, list)

	require.NoError(t, list.Scan(""))
	assert.Equal(t, StringList{}, list)
}

func TestStringListScanRejectsGarbage(t *testing.T) {
	var list StringList
	assert.Error(t, list.Scan("not json"))
	assert.Error(t, list.Scan(42))
}
