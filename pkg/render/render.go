// Package render walks the document tree and emits a LaTeX Beamer
// presentation as an ordered sequence of text fragments.
//
// Depth determines role: top-level keys are sections, their children
// subsections, their children frames, and everything below is nested
// itemize lists with no depth cap. Every open command has exactly one
// matching close, nested in reverse order, at every level.
package render

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthurkoziel/yml2tex/pkg/document"
	"github.com/arthurkoziel/yml2tex/pkg/errors"
	"github.com/arthurkoziel/yml2tex/pkg/highlight"
	"github.com/arthurkoziel/yml2tex/pkg/logging"
	"github.com/arthurkoziel/yml2tex/pkg/metas"
)

// Renderer converts a document body into Beamer markup. It is a pure
// function of its inputs apart from file reads delegated to the
// Highlighter for include frames.
type Renderer struct {
	meta    metas.Metadata
	hl      highlight.Highlighter
	baseDir string
	log     zerolog.Logger

	out []string
}

// New creates a Renderer. baseDir is the directory of the input
// document; include paths resolve relative to it.
func New(meta metas.Metadata, hl highlight.Highlighter, baseDir string) *Renderer {
	return &Renderer{
		meta:    meta,
		hl:      hl,
		baseDir: baseDir,
		log:     logging.GetLogger("render"),
	}
}

// Render produces the complete document as a fragment sequence:
// preamble, optional outline, one block per section in declaration
// order, terminator.
func (r *Renderer) Render(body *document.Node) ([]string, error) {
	r.out = nil

	r.preamble()
	if r.meta.Outline {
		r.outline()
	}

	if body != nil {
		for _, p := range body.Pairs {
			if err := r.section(p); err != nil {
				return nil, err
			}
		}
	}

	r.emit("\n\\end{document}\n")

	r.log.Debug().Int("fragments", len(r.out)).Msg("document rendered")
	return r.out, nil
}

func (r *Renderer) emit(s string) {
	r.out = append(r.out, s)
}

func (r *Renderer) preamble() {
	r.emit("\\documentclass[slidestop,red]{beamer}")
	r.emit("\n\\usepackage[utf8]{inputenc}")
	r.emit("\n\\usepackage{fancyvrb,color}\n")

	if defs := r.hl.StyleDefs(); defs != "" {
		r.emit("\n" + defs + "\n")
	}

	r.emit("\n\\usetheme{" + Escape(r.meta.Theme) + "}")
	r.emit("\n\\setbeamertemplate{footline}[frame number]")
	r.emit("\n\\usecolortheme{lily}")
	r.emit("\n\\beamertemplateshadingbackground{blue!5}{yellow!10}")

	if r.meta.ShortTitle != "" {
		r.emit("\n\n\\title[" + Escape(r.meta.ShortTitle) + "]{" + Escape(r.meta.Title) + "}")
	} else {
		r.emit("\n\n\\title{" + Escape(r.meta.Title) + "}")
	}
	r.emit("\n\\author{" + Escape(r.meta.Author) + "}")
	r.emit("\n\\institute{" + Escape(r.meta.Institute) + "}")
	r.emit("\n\\date{" + Escape(r.meta.Date) + "}")

	r.emit("\n\n\\begin{document}")
	r.emit("\n\n\\frame{\\titlepage}")
}

// outline emits the table-of-contents frame and re-emits it with the
// current section marked at every section start.
func (r *Renderer) outline() {
	name := Escape(r.meta.OutlineName)

	r.emit("\n\n\\section*{" + name + "}")
	r.emit("\n\\frame {")
	r.emit("\n\t\\frametitle{" + name + "}")
	r.emit("\n\t\\tableofcontents")
	r.emit("\n}")

	r.emit("\n\n\\AtBeginSection[] {")
	r.emit("\n\t\\frame{")
	r.emit("\n\t\t\\frametitle{" + name + "}")
	r.emit("\n\t\t\\tableofcontents[currentsection]")
	r.emit("\n\t}")
	r.emit("\n}")
}

func (r *Renderer) section(p document.Pair) error {
	path := []string{p.Key}
	if err := requireMapping(p.Value, "section", path); err != nil {
		return err
	}

	r.log.Trace().Str("section", p.Key).Msg("rendering section")
	r.emit("\n\n\\section{" + Escape(p.Key) + "}")

	for _, sub := range p.Value.Pairs {
		if err := r.subsection(sub, path); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) subsection(p document.Pair, parent []string) error {
	path := childPath(parent, p.Key)
	if err := requireMapping(p.Value, "subsection", path); err != nil {
		return err
	}

	r.emit("\n\\subsection{" + Escape(p.Key) + "}")

	for _, f := range p.Value.Pairs {
		if err := r.frame(f, path); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) frame(p document.Pair, parent []string) error {
	path := childPath(parent, p.Key)
	spec := ClassifyFrame(p.Key)

	switch spec.Kind {
	case FrameImage:
		return r.imageFrame(spec, p.Value, path)
	case FrameInclude:
		return r.includeFrame(spec)
	default:
		return r.plainFrame(spec, p.Value, path)
	}
}

func (r *Renderer) plainFrame(spec FrameSpec, value *document.Node, path []string) error {
	r.emit("\n\\frame {")
	r.emit("\n\t\\frametitle{" + Escape(spec.Title) + "}")
	if !value.IsNull() {
		if err := r.itemize(value, 1, path); err != nil {
			return err
		}
	}
	r.emit("\n}")
	return nil
}

// imageFrame emits a shrunk frame containing a single \pgfimage. Any
// options in the frame's mapping value pass through verbatim, in
// declaration order, so the image-command vocabulary stays open.
func (r *Renderer) imageFrame(spec FrameSpec, value *document.Node, path []string) error {
	var opts []string
	if !value.IsNull() {
		if value.Kind != document.KindMapping {
			return errors.Newf(errors.ErrInvalidStructure,
				"image options for %s must be a mapping, got %s", document.Path(path), value.Kind)
		}
		for _, o := range value.Pairs {
			if o.Value.IsNull() {
				opts = append(opts, o.Key)
				continue
			}
			if o.Value.Kind != document.KindScalar {
				return errors.Newf(errors.ErrInvalidStructure,
					"image option %q for %s must be a scalar", o.Key, document.Path(path))
			}
			opts = append(opts, o.Key+"="+o.Value.Value)
		}
	}

	r.emit("\n\\frame[shrink] {")
	r.emit("\n\t\\pgfimage[" + strings.Join(opts, ",") + "]{" + spec.Arg + "}")
	r.emit("\n}")
	return nil
}

// includeFrame embeds a source file, highlighted when the engine is
// enabled. The path resolves relative to the input document's
// directory, not the working directory.
func (r *Renderer) includeFrame(spec FrameSpec) error {
	path := spec.Arg
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}

	code, err := r.hl.Highlight(path)
	if err != nil {
		return err
	}

	r.emit("\n\\begin{frame}[fragile,t]")
	r.emit("\n\t\\frametitle{Code: \"" + Escape(spec.Arg) + "\"}")
	r.emit(code)
	r.emit("\n\\end{frame}")
	return nil
}

// itemize renders a list value at any depth. LaTeX Beamer caps nesting
// at three itemize levels; this renderer does not, it only guarantees
// the open/close discipline.
func (r *Renderer) itemize(value *document.Node, depth int, path []string) error {
	tabs := strings.Repeat("\t", depth)
	r.emit("\n" + tabs + "\\begin{itemize}")

	switch value.Kind {
	case document.KindSequence:
		for _, item := range value.Items {
			if err := r.listElement(item, depth, path); err != nil {
				return err
			}
		}
	case document.KindMapping:
		for _, p := range value.Pairs {
			if err := r.itemWithChildren(p.Key, p.Value, depth, path); err != nil {
				return err
			}
		}
	default:
		return errors.Newf(errors.ErrInvalidStructure,
			"list under %s must be a sequence or mapping, got %s", document.Path(path), value.Kind)
	}

	r.emit("\n" + tabs + "\\end{itemize}")
	return nil
}

func (r *Renderer) listElement(item *document.Node, depth int, path []string) error {
	switch item.Kind {
	case document.KindScalar:
		if item.Null {
			return nil
		}
		r.item(item.Value, depth)
		return nil

	case document.KindMapping:
		// A single-key mapping is an item with children. Multiple keys
		// in one list element are ambiguous and rejected outright.
		if len(item.Pairs) != 1 {
			return errors.Newf(errors.ErrInvalidStructure,
				"list item under %s has %d keys, expected exactly one (line %d)",
				document.Path(path), len(item.Pairs), item.Line)
		}
		p := item.Pairs[0]
		return r.itemWithChildren(p.Key, p.Value, depth, path)

	default:
		return errors.Newf(errors.ErrInvalidStructure,
			"bare sequence inside a list under %s (line %d)", document.Path(path), item.Line)
	}
}

func (r *Renderer) itemWithChildren(key string, value *document.Node, depth int, path []string) error {
	r.item(key, depth)
	if value.IsNull() {
		return nil
	}
	return r.itemize(value, depth+1, childPath(path, key))
}

// item emits one \item, applying the pause-marker rule: items reveal
// on advance unless prefixed with "+", which makes them appear with
// the frame.
func (r *Renderer) item(text string, depth int) {
	display, immediate := splitPause(text)
	tabs := strings.Repeat("\t", depth)
	if immediate {
		r.emit("\n" + tabs + "\\item " + Escape(display))
	} else {
		r.emit("\n" + tabs + "\\item<+-> " + Escape(display))
	}
}

// childPath copies before appending so sibling branches never share a
// backing array.
func childPath(parent []string, key string) []string {
	path := make([]string, len(parent), len(parent)+1)
	copy(path, parent)
	return append(path, key)
}

func requireMapping(n *document.Node, role string, path []string) error {
	if n == nil || n.Kind != document.KindMapping {
		got := "nothing"
		if n != nil {
			got = n.Kind.String()
		}
		return errors.Newf(errors.ErrInvalidStructure,
			"%s %s must contain a mapping, got %s", role, document.Path(path), got)
	}
	return nil
}
