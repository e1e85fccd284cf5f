package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rs/zerolog/log"

	"github.com/arthurkoziel/yml2tex/pkg/errors"
)

// Chroma highlights files with the chroma engine and renders tokens as
// a fancyvrb Verbatim block with inline color commands.
type Chroma struct {
	style *chroma.Style
}

// NewChroma creates a chroma-backed highlighter. Unknown style names
// fall back to chroma's default style.
func NewChroma(styleName string) *Chroma {
	return &Chroma{style: styles.Get(styleName)}
}

// Inside a Verbatim block with commandchars, backslash and braces are
// the only characters that need escaping. These macros put the literal
// characters back.
const verbatimMacros = `\newcommand\Cbs{\char` + "`" + `\\}
\newcommand\Cob{\char` + "`" + `\{}
\newcommand\Ccb{\char` + "`" + `\}}`

var verbEscaper = strings.NewReplacer(
	`\`, `\Cbs{}`,
	`{`, `\Cob{}`,
	`}`, `\Ccb{}`,
)

// StyleDefs returns the escape macros used by highlighted blocks.
func (c *Chroma) StyleDefs() string {
	return verbatimMacros
}

// Highlight reads and tokenizes the file at path. A lexer is guessed
// from the filename; when none matches, the plain-text lexer is used.
// Tokenizer failures degrade to an unhighlighted verbatim block rather
// than failing the run.
func (c *Chroma) Highlight(path string) (string, error) {
	contents, err := readInclude(path)
	if err != nil {
		return "", err
	}

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		log.Debug().Str("file", path).Msg("no lexer matched, using plain text")
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, contents)
	if err != nil {
		log.Info().Err(err).Str("file", path).Msg("highlighting failed, embedding plain text")
		return verbatimBlock(contents), nil
	}

	var b strings.Builder
	b.WriteString("\n\\begin{Verbatim}[commandchars=\\\\\\{\\}]\n")
	for tok := it(); tok != chroma.EOF; tok = it() {
		c.writeToken(&b, tok)
	}
	// fancyvrb needs \end{Verbatim} on its own line.
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\\end{Verbatim}\n")
	return b.String(), nil
}

// writeToken emits one token. Token values can span lines, but command
// arguments cannot, so each line is wrapped separately.
func (c *Chroma) writeToken(b *strings.Builder, tok chroma.Token) {
	entry := c.style.Get(tok.Type)
	for i, line := range strings.Split(tok.Value, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		if line == "" {
			continue
		}

		text := verbEscaper.Replace(line)
		if strings.TrimSpace(line) == "" {
			b.WriteString(text)
			continue
		}

		if entry.Bold == chroma.Yes {
			text = `\textbf{` + text + `}`
		}
		if entry.Italic == chroma.Yes {
			text = `\textit{` + text + `}`
		}
		if entry.Colour.IsSet() {
			hex := strings.ToUpper(strings.TrimPrefix(entry.Colour.String(), "#"))
			text = `\textcolor[HTML]{` + hex + `}{` + text + `}`
		}
		b.WriteString(text)
	}
}

func readInclude(path string) (string, error) {
	contents, err := readFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIncludeRead, "cannot read included file %q", path)
	}
	return contents, nil
}
