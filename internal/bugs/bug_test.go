package bugs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMustBugfPanicsInTests(t *testing.T) {
	require.True(t, isInTests())
	require.PanicsWithValue(t, "letter 27 out of range", func() {
		_ = MustBugf("letter %d out of range", 27)
	})
}
