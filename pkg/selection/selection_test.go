package selection_test

import (
	"testing"

	"github.com/papyra/papyra/pkg/selection"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("accepts non-empty selection", func(t *testing.T) {
		s := selection.Of("file1.pdf", "file2.pdf")
		require.NoError(t, s.Validate())
	})

	t.Run("rejects explicit empty selection", func(t *testing.T) {
		s := selection.Of()

		require.True(t, s.Explicit())
		require.ErrorIs(t, s.Validate(), selection.ErrNoSelection)
	})

	t.Run("rejects absent selection", func(t *testing.T) {
		s := selection.None()

		require.False(t, s.Explicit())
		require.ErrorIs(t, s.Validate(), selection.ErrNoSelection)
	})
}

func TestRestricts(t *testing.T) {
	t.Run("absent does not restrict", func(t *testing.T) {
		require.False(t, selection.None().Restricts())
	})

	t.Run("explicit empty does not restrict", func(t *testing.T) {
		require.False(t, selection.Of().Restricts())
	})

	t.Run("explicit non-empty restricts", func(t *testing.T) {
		require.True(t, selection.Of("file1.pdf").Restricts())
	})
}

func TestContains(t *testing.T) {
	s := selection.Of("file1.pdf", "Reports/Q3.pdf")

	require.True(t, s.Contains("file1.pdf"))
	require.True(t, s.Contains("Reports/Q3.pdf"))

	// matching is byte-exact
	require.False(t, s.Contains("File1.pdf"))
	require.False(t, s.Contains("FILE1.PDF"))
	require.False(t, s.Contains("Q3.pdf"))
}

func TestOfClonesInput(t *testing.T) {
	ids := []string{"file1.pdf"}

	s := selection.Of(ids...)
	ids[0] = "file2.pdf"

	require.True(t, s.Contains("file1.pdf"))
	require.False(t, s.Contains("file2.pdf"))
}
