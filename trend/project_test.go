package trend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectRange(t *testing.T) {
	f := NewFitter()
	f.Add(0, 1)
	f.Add(10, math.Exp(10))

	out := ProjectRange(f, 0, 10, DefaultExtension, 10)
	require.Len(t, out, 11)
	require.Equal(t, -2.5, out[0].X)
	require.Equal(t, 12.5, out[len(out)-1].X)

	for i, p := range out {
		require.InEpsilon(t, math.Exp(p.X), p.Y, 1e-9, "point %d", i)
		if i > 0 {
			require.InDelta(t, 1.5, p.X-out[i-1].X, 1e-12)
		}
	}
}

func TestProjectRange_Defaults(t *testing.T) {
	f := NewFitter()
	f.Add(1, 2)
	f.Add(2, 4)

	out := ProjectRange(f, 1, 2, 0, 0)
	require.Len(t, out, DefaultSteps+1)
	require.Equal(t, 1.0, out[0].X)
	require.Equal(t, 2.0, out[DefaultSteps].X)
}

func TestProjectRange_Degenerate(t *testing.T) {
	f := NewFitter()
	f.Add(5, 5)

	out := ProjectRange(f, 5, 5, DefaultExtension, 4)
	require.Len(t, out, 5)
	for _, p := range out {
		require.Equal(t, 5.0, p.X)
		require.True(t, isNonFinite(p.Y))
	}
}
