// Package metas resolves document metadata from the reserved top-level
// "metas" key.
package metas

import (
	"strconv"

	"github.com/arthurkoziel/yml2tex/pkg/document"
	"github.com/arthurkoziel/yml2tex/pkg/errors"
)

// ReservedKey is the top-level key holding document metadata. It is
// never rendered as a section.
const ReservedKey = "metas"

// Metadata holds every recognized presentation option, fully populated
// after Resolve.
type Metadata struct {
	Title          string
	ShortTitle     string
	Author         string
	Institute      string
	Date           string
	Outline        bool
	HighlightStyle string
	OutlineName    string
	Theme          string
}

// Defaults returns the documented default for every option.
func Defaults() Metadata {
	return Metadata{
		Title:          "Example Presentation",
		ShortTitle:     "",
		Author:         "Arthur Koziel",
		Institute:      "",
		Date:           `\today`,
		Outline:        true,
		HighlightStyle: "default",
		OutlineName:    "Outline",
		Theme:          "Antibes",
	}
}

// Resolve extracts the reserved metadata key from the document root and
// merges its values over base. It returns the resolved metadata and the
// document body with the reserved pair removed. Unrecognized option
// names are ignored; a non-mapping value under the reserved key is an
// error.
func Resolve(root *document.Node, base Metadata) (Metadata, *document.Node, error) {
	meta := base

	if root == nil || root.Kind != document.KindMapping {
		return meta, root, nil
	}

	body := &document.Node{
		Kind:   document.KindMapping,
		Line:   root.Line,
		Column: root.Column,
	}

	for _, p := range root.Pairs {
		if p.Key != ReservedKey {
			body.Pairs = append(body.Pairs, p)
			continue
		}

		if p.Value.IsNull() {
			continue
		}
		if p.Value.Kind != document.KindMapping {
			return meta, nil, errors.Newf(errors.ErrMetasInvalid,
				"%q must be a mapping of options, got %s (line %d)",
				ReservedKey, p.Value.Kind, p.Value.Line)
		}
		apply(&meta, p.Value)
	}

	return meta, body, nil
}

func apply(meta *Metadata, options *document.Node) {
	for _, opt := range options.Pairs {
		value := ""
		if opt.Value != nil && opt.Value.Kind == document.KindScalar && !opt.Value.Null {
			value = opt.Value.Value
		}

		switch opt.Key {
		case "title":
			meta.Title = value
		case "short_title":
			meta.ShortTitle = value
		case "author":
			meta.Author = value
		case "institute":
			meta.Institute = value
		case "date":
			meta.Date = value
		case "outline":
			if b, err := strconv.ParseBool(value); err == nil {
				meta.Outline = b
			}
		case "highlight_style":
			meta.HighlightStyle = value
		case "outline_name":
			meta.OutlineName = value
		case "theme":
			meta.Theme = value
		}
		// Anything else is silently ignored.
	}
}
