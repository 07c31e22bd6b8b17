package specfun

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Mobius_Table(t *testing.T) {
	want := map[int]int{
		1: 1, 2: -1, 3: -1, 4: 0, 5: -1, 6: 1, 7: -1, 8: 0,
		9: 0, 10: 1, 11: -1, 12: 0, 13: -1, 14: 1, 15: 1,
	}
	for k, mu := range want {
		require.Equal(t, mu, Mobius(k), "mu(%d)", k)
	}
}

func Test_Mobius_TrialDivision(t *testing.T) {
	// above the table boundary
	require.Equal(t, -1, Mobius(17))
	require.Equal(t, 0, Mobius(18)) // 2*3^2
	require.Equal(t, 1, Mobius(21)) // 3*7
	require.Equal(t, -1, Mobius(30))
	require.Equal(t, 0, Mobius(49))
	require.Equal(t, 0, Mobius(100))
	require.Equal(t, -1, Mobius(105)) // 3*5*7
	require.Equal(t, 1, Mobius(210))  // 2*3*5*7
}

func Test_Mobius_OutOfDomain(t *testing.T) {
	require.Zero(t, Mobius(0))
	require.Zero(t, Mobius(-6))
}
