package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"1234567", "1234567"},
		{"10^3", "1000"},
		{"2^64", "18446744073709551616"},
		{"10^18", "1000000000000000000"},
	}
	for _, tc := range cases {
		n, xerr := parseIndex(tc.in)
		require.Nil(t, xerr, tc.in)
		require.Equal(t, tc.want, n.String(), tc.in)
	}
}

func TestParseIndexRejects(t *testing.T) {
	for _, in := range []string{
		"", "0", "-7", "abc", "10^", "^3", "10^-2", "10^abc", "0^5", "10^99999",
	} {
		_, xerr := parseIndex(in)
		require.NotNil(t, xerr, in)
	}
}
