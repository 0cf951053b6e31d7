package xcover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	options := [][]string{
		{"c", "e"},
		{"a", "d", "g"},
		{"b", "c", "f"},
		{"a", "d", "f"},
		{"b", "g"},
		{"d", "e", "g"},
	}

	t.Run("accepts a valid cover", func(t *testing.T) {
		require.NoError(t, Verify([]int{0, 3, 4}, options, nil))
	})

	t.Run("rejects a double cover", func(t *testing.T) {
		err := Verify([]int{0, 3, 5}, options, nil)
		require.ErrorIs(t, err, ErrNotExactCover)
	})

	t.Run("rejects a missing item", func(t *testing.T) {
		err := Verify([]int{0, 3}, options, nil)
		require.ErrorIs(t, err, ErrNotExactCover)
	})

	t.Run("rejects a repeated option", func(t *testing.T) {
		err := Verify([]int{0, 0}, options, nil)
		require.ErrorIs(t, err, ErrNotExactCover)
	})

	t.Run("rejects an out of range option", func(t *testing.T) {
		err := Verify([]int{99}, options, nil)
		require.ErrorIs(t, err, ErrNotExactCover)
	})
}

func TestVerifyColored(t *testing.T) {
	cfg := &Config{
		Primary:   []string{"p", "q", "r"},
		Secondary: []string{"x", "y"},
		Colored:   true,
	}
	options := [][]string{
		{"p", "q", "x", "y:A"},
		{"p", "r", "x:A", "y"},
		{"p", "x:B"},
		{"q", "x:A"},
		{"r", "y:B"},
	}

	t.Run("accepts agreeing colors", func(t *testing.T) {
		require.NoError(t, Verify([]int{3, 1}, options, cfg))
	})

	t.Run("rejects clashing colors", func(t *testing.T) {
		// Options 2 and 3 color x with B and A.
		err := Verify([]int{2, 3, 4}, options, cfg)
		require.ErrorIs(t, err, ErrNotExactCover)
	})

	t.Run("rejects an uncolored double cover", func(t *testing.T) {
		// Every primary item is covered once, but y appears uncolored in
		// option 0 and colored in option 1.
		mixed := [][]string{{"p", "y"}, {"q", "y:A"}, {"r"}}
		err := Verify([]int{0, 1, 2}, mixed, cfg)
		require.ErrorIs(t, err, ErrNotExactCover)
	})
}

func TestVerifyEveryEnumeratedSolution(t *testing.T) {
	p, err := NewProblemWithConfig(queensOptions(7), &Config{Secondary: queensDiagonals(7)})
	require.NoError(t, err)
	sols := p.All(0)
	require.Len(t, sols, 40)
	for _, sol := range sols {
		require.NoError(t, p.VerifySolution(sol))
	}
}
