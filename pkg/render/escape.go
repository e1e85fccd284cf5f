package render

import "strings"

// texEscaper escapes the LaTeX special characters that can appear in
// titles and item text. Backslash is deliberately not escaped so that
// raw commands like \today pass through metadata untouched.
var texEscaper = strings.NewReplacer(
	"&", `\&`,
	"$", `\$`,
	"%", `\%`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
)

// Escape returns text with LaTeX special characters escaped. It is
// applied at every point where literal text is inserted into markup.
func Escape(text string) string {
	return texEscaper.Replace(text)
}
