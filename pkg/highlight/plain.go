package highlight

import (
	"os"
	"strings"
)

// Plain embeds file contents without highlighting. Used when
// highlighting is disabled; output quality degrades but the run
// succeeds.
type Plain struct{}

// StyleDefs returns nothing; plain verbatim needs no preamble support.
func (Plain) StyleDefs() string {
	return ""
}

// Highlight embeds the raw file contents in a verbatim environment.
func (Plain) Highlight(path string) (string, error) {
	contents, err := readInclude(path)
	if err != nil {
		return "", err
	}
	return verbatimBlock(contents), nil
}

func verbatimBlock(contents string) string {
	if !strings.HasSuffix(contents, "\n") {
		contents += "\n"
	}
	return "\n\\begin{verbatim}\n" + contents + "\\end{verbatim}\n"
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
