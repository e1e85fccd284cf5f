// pkg/highlight/highlight_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (t.TempDir)
// PURPOSE: Test highlighter selection, chroma output shape, and plain fallback

package highlight_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthurkoziel/yml2tex/pkg/errors"
	"github.com/arthurkoziel/yml2tex/pkg/highlight"
)

func writeFixture(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestSelect(t *testing.T) {
	assert.IsType(t, &highlight.Chroma{}, highlight.Select(true, "default"))
	assert.IsType(t, highlight.Plain{}, highlight.Select(false, "default"))
}

func TestChromaHighlightPython(t *testing.T) {
	path := writeFixture(t, "hello.py", "def main():\n    return 42\n")

	hl := highlight.NewChroma("monokai")
	out, err := hl.Highlight(path)
	require.NoError(t, err)

	assert.Contains(t, out, `\begin{Verbatim}[commandchars=\\\{\}]`)
	assert.Contains(t, out, `\end{Verbatim}`)
	// The keyword should be wrapped in a color command.
	assert.Contains(t, out, `\textcolor[HTML]{`)
	assert.Contains(t, out, "def")
	assert.Contains(t, out, "main")
}

func TestChromaEscapesVerbatimSpecials(t *testing.T) {
	path := writeFixture(t, "braces.txt", "a {b} \\c\n")

	hl := highlight.NewChroma("default")
	out, err := hl.Highlight(path)
	require.NoError(t, err)

	// Literal braces and backslashes go through the escape macros.
	assert.Contains(t, out, `\Cob{}`)
	assert.Contains(t, out, `\Ccb{}`)
	assert.Contains(t, out, `\Cbs{}`)
	assert.NotContains(t, out, "{b}")
}

func TestChromaNoTrailingNewline(t *testing.T) {
	path := writeFixture(t, "frag.py", "return 42")

	hl := highlight.NewChroma("default")
	out, err := hl.Highlight(path)
	require.NoError(t, err)

	// \end{Verbatim} must land on its own line even when the file does
	// not end with a newline.
	assert.True(t, strings.HasSuffix(out, "\n\\end{Verbatim}\n"), "got %q", out)
	assert.NotContains(t, out, "42\\end{Verbatim}")
}

func TestChromaUnknownExtensionFallsBack(t *testing.T) {
	path := writeFixture(t, "notes.zzz-unknown", "plain words here\n")

	hl := highlight.NewChroma("default")
	out, err := hl.Highlight(path)
	require.NoError(t, err)

	// Content survives even without a matching lexer.
	assert.Contains(t, out, "plain words here")
}

func TestChromaStyleDefs(t *testing.T) {
	hl := highlight.NewChroma("monokai")
	defs := hl.StyleDefs()

	assert.Contains(t, defs, `\newcommand\Cbs`)
	assert.Contains(t, defs, `\newcommand\Cob`)
	assert.Contains(t, defs, `\newcommand\Ccb`)
}

func TestPlainHighlight(t *testing.T) {
	path := writeFixture(t, "raw.py", "print('hi')\n")

	out, err := highlight.Plain{}.Highlight(path)
	require.NoError(t, err)

	assert.Contains(t, out, "\\begin{verbatim}\nprint('hi')\n\\end{verbatim}")
	assert.Empty(t, highlight.Plain{}.StyleDefs())
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.py")

	for _, hl := range []highlight.Highlighter{highlight.NewChroma("default"), highlight.Plain{}} {
		_, err := hl.Highlight(missing)
		require.Error(t, err)
		assert.Equal(t, errors.ErrIncludeRead, errors.GetErrorCode(err))
	}
}
