// Package highlight turns source files into embeddable LaTeX blocks for
// "include" frames.
//
// Highlighting is a capability, not a requirement: the renderer is
// handed a Highlighter once at startup and never probes for the engine
// itself. Chroma does lexing and styling; Plain embeds the raw file in
// a verbatim environment and is used when highlighting is disabled.
// Either way the result is a complete LaTeX block, never raw tokens.
package highlight

// Highlighter produces LaTeX for included source files.
type Highlighter interface {
	// StyleDefs returns preamble definitions required by Highlight
	// output. May be empty.
	StyleDefs() string

	// Highlight reads the file at path and returns a self-contained
	// LaTeX block with its contents.
	Highlight(path string) (string, error)
}

// Select picks the Highlighter implementation once at startup.
func Select(enabled bool, styleName string) Highlighter {
	if !enabled {
		return Plain{}
	}
	return NewChroma(styleName)
}
