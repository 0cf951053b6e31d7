package xcover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Langford pairs for n=3: place two of each number k so that the copies
// of k have exactly k slots between them. The two sequences 312132 and 231213
// are the only arrangements.
const langford3 = `
| langford pairs, n = 3
/ numbers then slots; everything is primary
1 2 3 s1 s2 s3 s4 s5 s6
1 s1 s3
1 s2 s4
1 s3 s5
1 s4 s6
2 s1 s4
2 s2 s5
2 s3 s6
3 s1 s5
3 s2 s6
`

func TestReadProblem(t *testing.T) {
	t.Run("langford pairs", func(t *testing.T) {
		p, err := ReadProblem(strings.NewReader(langford3))
		require.NoError(t, err)
		require.Equal(t, 9, p.NumPrimary())
		require.Equal(t, 0, p.NumSecondary())
		require.Equal(t, 9, p.NumOptions())

		sols := p.All(0)
		require.Len(t, sols, 2)
		for _, sol := range sols {
			require.NoError(t, p.VerifySolution(sol))
		}
		require.EqualValues(t, 2, p.BuildZDD().Count().Int64())
	})

	t.Run("secondary and colors after the bar", func(t *testing.T) {
		text := `
p q r | x y
p q x y:A
p r x:A y
p x:B
q x:A
r y:B
`
		p, err := ReadProblem(strings.NewReader(text))
		require.NoError(t, err)
		require.Equal(t, 3, p.NumPrimary())
		require.Equal(t, 2, p.NumSecondary())
		require.True(t, p.Config().Colored)

		require.Equal(t, [][]int{{3, 1}}, p.All(0))
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := ReadProblem(strings.NewReader("| only comments\n"))
		require.Error(t, err)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := ReadProblemFile("does-not-exist.xcc")
		require.Error(t, err)
	})
}

// langfordText renders the order-n Langford pairing problem in the text
// format: numbers and slots on the header line, one option per legal
// placement of a number into a slot pair.
func langfordText(n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "| langford pairs, n = %d\n", n)
	for k := 1; k <= n; k++ {
		fmt.Fprintf(&b, "%d ", k)
	}
	for j := 1; j <= 2*n; j++ {
		fmt.Fprintf(&b, "s%d ", j)
	}
	b.WriteString("\n")
	for k := 1; k <= n; k++ {
		for j := 1; j+k+1 <= 2*n; j++ {
			fmt.Fprintf(&b, "%d s%d s%d\n", k, j, j+k+1)
		}
	}
	return b.String()
}

func TestReadProblemFile(t *testing.T) {
	// Langford pairs of order 7: 26 arrangements, 52 counting reversals.
	path := filepath.Join(t.TempDir(), "langford7.xcc")
	require.NoError(t, os.WriteFile(path, []byte(langfordText(7)), 0o644))

	p, err := ReadProblemFile(path)
	require.NoError(t, err)
	require.Equal(t, 7+14, p.NumPrimary())
	require.Equal(t, 0, p.NumSecondary())

	sols := p.All(0)
	require.Len(t, sols, 52)
	for _, sol := range sols {
		require.NoError(t, p.VerifySolution(sol))
	}
	require.EqualValues(t, 52, p.BuildZDD().Count().Int64())
}
