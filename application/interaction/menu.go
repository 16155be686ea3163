package interaction

import (
	"osintgraph/domain/core/valueobjects"
)

// ActionKind names an entry of the node context menu
type ActionKind string

const (
	ActionToIP           ActionKind = "to_ip"
	ActionToBacklinks    ActionKind = "to_backlinks"
	ActionToWebsite      ActionKind = "to_website"
	ActionAddToFavorites ActionKind = "add_to_favorites"
	ActionDelete         ActionKind = "delete"
)

// NoNodeSelected is the menu title shown when nothing is under the cursor
const NoNodeSelected = "No node selected"

var actionLabels = map[ActionKind]string{
	ActionToIP:           "To IP",
	ActionToBacklinks:    "To Backlinks",
	ActionToWebsite:      "To Website",
	ActionAddToFavorites: "Add to favorites",
	ActionDelete:         "Delete",
}

// typeActions are the type-specific entries; Delete is appended for every type.
var typeActions = map[valueobjects.NodeType][]ActionKind{
	valueobjects.NodeTypeWebsite: {ActionToIP, ActionToBacklinks},
	valueobjects.NodeTypeResult:  {ActionToWebsite},
	valueobjects.NodeTypeGoogle:  {ActionAddToFavorites},
}

// MenuAction is one clickable entry
type MenuAction struct {
	Action ActionKind `json:"action"`
	Label  string     `json:"label"`
}

// Menu is the context menu for the node under the cursor
type Menu struct {
	NodeID  string       `json:"node_id,omitempty"`
	Title   string       `json:"title"`
	Badge   string       `json:"badge,omitempty"`
	Actions []MenuAction `json:"actions"`
}

// Label returns the text shown for an action
func (a ActionKind) Label() string {
	return actionLabels[a]
}

// ParseActionKind validates a raw action name
func ParseActionKind(raw string) (ActionKind, bool) {
	a := ActionKind(raw)
	_, ok := actionLabels[a]
	return a, ok
}

// ActionsFor lists the menu actions offered for a node type, Delete last
func ActionsFor(nodeType valueobjects.NodeType) []ActionKind {
	if !nodeType.IsValid() {
		return nil
	}
	actions := append([]ActionKind{}, typeActions[nodeType]...)
	return append(actions, ActionDelete)
}

func offers(nodeType valueobjects.NodeType, action ActionKind) bool {
	for _, a := range ActionsFor(nodeType) {
		if a == action {
			return true
		}
	}
	return false
}

func emptyMenu() Menu {
	return Menu{Title: NoNodeSelected, Actions: []MenuAction{}}
}
