package xcover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalization(t *testing.T) {
	t.Run("primary inferred in first appearance order", func(t *testing.T) {
		p, err := NewProblem([][]string{{"c", "e"}, {"a", "c"}})
		require.NoError(t, err)
		require.Equal(t, 3, p.NumPrimary())
		require.Equal(t, 0, p.NumSecondary())
		require.Equal(t, "c", p.ItemName(0))
		require.Equal(t, "e", p.ItemName(1))
		require.Equal(t, "a", p.ItemName(2))
	})

	t.Run("secondary inferred from explicit primary", func(t *testing.T) {
		p, err := NewProblemWithConfig(
			[][]string{{"a", "s"}, {"b", "t"}},
			&Config{Primary: []string{"a", "b"}},
		)
		require.NoError(t, err)
		require.Equal(t, 2, p.NumPrimary())
		require.Equal(t, 2, p.NumSecondary())
		require.Equal(t, "s", p.ItemName(2))
		require.Equal(t, "t", p.ItemName(3))
	})

	t.Run("colon is part of the identifier without Colored", func(t *testing.T) {
		p, err := NewProblem([][]string{{"a:1", "b"}})
		require.NoError(t, err)
		require.Equal(t, 2, p.NumPrimary())
		require.Equal(t, "a:1", p.ItemName(0))
	})

	t.Run("explicit lists keep their declared order", func(t *testing.T) {
		p, err := NewProblemWithConfig(
			[][]string{{"z", "y", "x"}},
			&Config{Primary: []string{"x", "y", "z"}, Secondary: []string{}},
		)
		require.NoError(t, err)
		require.Equal(t, "x", p.ItemName(0))
		require.Equal(t, "z", p.ItemName(2))
	})
}

func TestInputErrors(t *testing.T) {
	t.Run("empty primary", func(t *testing.T) {
		_, err := NewProblemWithConfig(
			[][]string{{"a"}},
			&Config{Primary: []string{"a", "b"}, Secondary: []string{}},
		)
		var want *EmptyPrimaryError
		require.ErrorAs(t, err, &want)
		require.Equal(t, "b", want.Item)
	})

	t.Run("no options is not an empty primary", func(t *testing.T) {
		_, err := NewProblemWithConfig([][]string{}, &Config{Primary: []string{"a"}})
		require.NoError(t, err)
	})

	t.Run("unknown item with both lists explicit", func(t *testing.T) {
		_, err := NewProblemWithConfig(
			[][]string{{"a", "mystery"}},
			&Config{Primary: []string{"a"}, Secondary: []string{}},
		)
		var want *UnknownItemError
		require.ErrorAs(t, err, &want)
		require.Equal(t, 0, want.Option)
		require.Equal(t, "mystery", want.Token)
	})

	t.Run("color on a primary item", func(t *testing.T) {
		_, err := NewProblemWithConfig(
			[][]string{{"a:RED"}},
			&Config{Primary: []string{"a"}, Secondary: []string{}, Colored: true},
		)
		var want *ColorOnPrimaryError
		require.ErrorAs(t, err, &want)
		require.Equal(t, "a", want.Item)
	})

	t.Run("duplicate item under Strict", func(t *testing.T) {
		_, err := NewProblemWithConfig(
			[][]string{{"a", "a"}},
			&Config{Strict: true},
		)
		var want *DuplicateItemError
		require.ErrorAs(t, err, &want)
		require.Equal(t, 0, want.Option)
		require.Equal(t, "a", want.Item)
	})

	t.Run("duplicate item dropped by default", func(t *testing.T) {
		p, err := NewProblem([][]string{{"a", "a"}, {"a"}})
		require.NoError(t, err)
		require.Len(t, p.Rejected(), 1)
		require.Equal(t, [][]int{{1}}, p.All(0))
	})

	t.Run("item in both explicit lists", func(t *testing.T) {
		_, err := NewProblemWithConfig(
			[][]string{{"a"}},
			&Config{Primary: []string{"a"}, Secondary: []string{"a"}},
		)
		require.Error(t, err)
	})

	t.Run("empty color label", func(t *testing.T) {
		_, err := NewProblemWithConfig(
			[][]string{{"p", "x:"}},
			&Config{Primary: []string{"p"}, Secondary: []string{"x"}, Colored: true},
		)
		require.Error(t, err)
	})
}

func TestFromMatrixShape(t *testing.T) {
	t.Run("ragged rows rejected", func(t *testing.T) {
		_, err := FromMatrix([][]bool{{true, false}, {true}})
		require.Error(t, err)
	})

	t.Run("column with no options is an empty primary", func(t *testing.T) {
		_, err := FromMatrix([][]bool{{true, false}})
		var want *EmptyPrimaryError
		require.ErrorAs(t, err, &want)
		require.Equal(t, "1", want.Item)
	})
}
