// Package document defines the in-memory model for a slide outline and
// loads it from YAML.
//
// The model is deliberately small: a document is a tree of mappings,
// sequences and scalars, and the order of mapping keys is semantically
// significant (it determines render order). The standard yaml.v3
// map-based decoding would lose that order, so the loader walks the raw
// yaml.Node tree instead.
package document

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthurkoziel/yml2tex/pkg/errors"
)

// Kind discriminates the Node variants.
type Kind int

const (
	// KindMapping is an ordered list of key/value pairs.
	KindMapping Kind = iota
	// KindSequence is an ordered list of nodes.
	KindSequence
	// KindScalar is a string leaf. A YAML null is a scalar with Null set.
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	}
	return "unknown"
}

// Node is one node of the document tree. Exactly one of Pairs, Items or
// Value is meaningful, selected by Kind. Nodes are read-only after Load.
type Node struct {
	Kind  Kind
	Pairs []Pair  // KindMapping
	Items []*Node // KindSequence
	Value string  // KindScalar
	Null  bool    // KindScalar: the scalar was a YAML null

	// Source position, for error messages.
	Line   int
	Column int
}

// Pair is one key/value entry of a mapping. Pair order is declaration
// order in the source document.
type Pair struct {
	Key   string
	Value *Node
}

// IsNull reports whether n is a null scalar (or nil).
func (n *Node) IsNull() bool {
	return n == nil || (n.Kind == KindScalar && n.Null)
}

// Get returns the value for key in a mapping node, or nil if absent.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != KindMapping {
		return nil
	}
	for _, p := range n.Pairs {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}

// Load reads and parses the document at path.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocRead, "cannot read document %q", path)
	}
	return Parse(data)
}

// Parse parses YAML source into a document tree. The top level must be
// a mapping.
func Parse(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrDocParse, "invalid YAML document")
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, errors.New(errors.ErrDocParse, "document is empty")
	}

	node, err := fromYAML(root.Content[0])
	if err != nil {
		return nil, err
	}
	if node.Kind != KindMapping {
		return nil, errors.Newf(errors.ErrInvalidStructure,
			"top level must be a mapping of sections, got %s (line %d)", node.Kind, node.Line)
	}
	return node, nil
}

func fromYAML(y *yaml.Node) (*Node, error) {
	// Resolve anchors transparently.
	if y.Kind == yaml.AliasNode {
		return fromYAML(y.Alias)
	}

	n := &Node{Line: y.Line, Column: y.Column}

	switch y.Kind {
	case yaml.MappingNode:
		n.Kind = KindMapping
		seen := make(map[string]bool, len(y.Content)/2)
		for i := 0; i+1 < len(y.Content); i += 2 {
			keyNode, valNode := y.Content[i], y.Content[i+1]
			key := keyNode.Value
			if seen[key] {
				return nil, errors.Newf(errors.ErrInvalidStructure,
					"duplicate key %q (line %d)", key, keyNode.Line)
			}
			seen[key] = true

			val, err := fromYAML(valNode)
			if err != nil {
				return nil, err
			}
			n.Pairs = append(n.Pairs, Pair{Key: key, Value: val})
		}

	case yaml.SequenceNode:
		n.Kind = KindSequence
		for _, c := range y.Content {
			item, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			n.Items = append(n.Items, item)
		}

	case yaml.ScalarNode:
		n.Kind = KindScalar
		n.Value = y.Value
		n.Null = y.Tag == "!!null"

	default:
		return nil, errors.Newf(errors.ErrInvalidStructure,
			"unsupported YAML node kind at line %d", y.Line)
	}

	return n, nil
}

// Path renders a key path for error messages, e.g. "Intro > History".
func Path(keys []string) string {
	if len(keys) == 0 {
		return "(document root)"
	}
	return strings.Join(keys, " > ")
}

// String is a compact debugging representation, not the rendered output.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindScalar:
		if n.Null {
			return "~"
		}
		return fmt.Sprintf("%q", n.Value)
	case KindSequence:
		return fmt.Sprintf("sequence(%d)", len(n.Items))
	default:
		return fmt.Sprintf("mapping(%d)", len(n.Pairs))
	}
}
