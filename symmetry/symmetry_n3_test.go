//go:build n3

package symmetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckN3AllEqualIsEquivocal(t *testing.T) {
	require.Equal(t, Equivocal, Check([3]int{3, 3, 3}))
}
