package commands

// Message constants
const (
	MsgRootShort = "Turn a YAML outline into a LaTeX Beamer presentation"
	MsgRootLong  = `yml2tex converts a YAML file describing sections, subsections, frames
and list items into a complete LaTeX Beamer presentation on stdout.

Top-level keys become sections, their children subsections, and their
children frames. Frame contents are itemized lists; items reveal one by
one unless prefixed with "+". Frames named "image <file>" include an
image, frames named "include <file>" embed a syntax-highlighted source
listing.

Run 'yml2tex help topics' for details on the outline syntax, metadata
options and configuration.`

	MsgRootExample = `  # Convert a presentation outline
  yml2tex talk.yml > talk.tex

  # With verbose logging on stderr
  yml2tex -v talk.yml > talk.tex`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/yml2tex/config.toml)"

	MsgCompletionShort = "Generate shell completion script"
)
