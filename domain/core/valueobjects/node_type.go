package valueobjects

import (
	"strings"

	pkgerrors "osintgraph/pkg/errors"
)

// NodeType tags the kind of OSINT entity a node represents
type NodeType string

const (
	NodeTypeWebsite NodeType = "website"
	NodeTypeGoogle  NodeType = "google"
	NodeTypeCSE     NodeType = "cse"
	NodeTypeResult  NodeType = "result"
)

// KnownNodeTypes lists every type the canvas can render
var KnownNodeTypes = []NodeType{NodeTypeWebsite, NodeTypeGoogle, NodeTypeCSE, NodeTypeResult}

// ParseNodeType converts a raw type string, as carried by a drag payload
func ParseNodeType(raw string) (NodeType, error) {
	t := NodeType(strings.TrimSpace(raw))
	if t == "" {
		return "", pkgerrors.NewValidationError("node type cannot be empty")
	}
	if !t.IsValid() {
		return "", pkgerrors.NewValidationError("unknown node type: " + string(t))
	}
	return t, nil
}

// IsValid reports whether the type is one the canvas knows
func (t NodeType) IsValid() bool {
	for _, known := range KnownNodeTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Prefix is the one-letter id prefix used for dropped nodes
func (t NodeType) Prefix() string {
	if t == "" {
		return ""
	}
	return string(t)[:1]
}

// DisplayName returns the type with its first letter upper-cased
func (t NodeType) DisplayName() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

// DefaultLabel is the label given to freshly dropped nodes
func (t NodeType) DefaultLabel() string {
	return string(t) + " node"
}

// String returns the raw type
func (t NodeType) String() string {
	return string(t)
}
