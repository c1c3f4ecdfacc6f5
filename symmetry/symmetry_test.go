//go:build !n3 && !n4 && !n5

package symmetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckN6Canonical(t *testing.T) {
	require.Equal(t, Canonical, Check([6]int{6, 6, 3, 5, 4, 3}))
}

func TestCheckN6ReflectionIsNonCanonical(t *testing.T) {
	require.Equal(t, NonCanonical, Check([6]int{6, 6, 3, 4, 5, 3}))
}
