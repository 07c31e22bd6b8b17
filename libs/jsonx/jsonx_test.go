package jsonx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalSortsKeys(t *testing.T) {
	bz, err := Marshal(map[string]int{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	require.Equal(t, `{"a":1,"b":2,"c":3}`, string(bz))
}

func TestMarshalIndent(t *testing.T) {
	bz, err := MarshalIndent(map[string]int{"b": 2, "a": 1}, "", "  ")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}", string(bz))
}

func TestRoundtrip(t *testing.T) {
	type rec struct {
		Prime  string `json:"prime"`
		Tested int    `json:"tested"`
	}
	in := rec{Prime: "19402949", Tested: 13}

	bz, err := Marshal(in)
	require.NoError(t, err)

	var out rec
	require.NoError(t, Unmarshal(bz, &out))
	require.Equal(t, in, out)
}

func TestRejectsCorruptRawMessage(t *testing.T) {
	var v map[string]any
	require.Error(t, Unmarshal([]byte(`{"a":`), &v))
}
