package interaction

import (
	"context"

	"osintgraph/domain/core/entities"
)

// Enricher backs the lookup actions of the context menu. Implementations may
// call out to search providers; the canvas only records what they return.
type Enricher interface {
	ToIP(ctx context.Context, node *entities.Node) (ActionResult, error)
	ToBacklinks(ctx context.Context, node *entities.Node) (ActionResult, error)
	AddToFavorites(ctx context.Context, node *entities.Node) (ActionResult, error)
}

// StubEnricher answers every lookup with StatusNotImplemented and leaves the graph alone
type StubEnricher struct{}

// NewStubEnricher creates the default enricher
func NewStubEnricher() *StubEnricher {
	return &StubEnricher{}
}

// ToIP implements Enricher
func (StubEnricher) ToIP(_ context.Context, node *entities.Node) (ActionResult, error) {
	return stubResult(ActionToIP, node), nil
}

// ToBacklinks implements Enricher
func (StubEnricher) ToBacklinks(_ context.Context, node *entities.Node) (ActionResult, error) {
	return stubResult(ActionToBacklinks, node), nil
}

// AddToFavorites implements Enricher
func (StubEnricher) AddToFavorites(_ context.Context, node *entities.Node) (ActionResult, error) {
	return stubResult(ActionAddToFavorites, node), nil
}

func stubResult(action ActionKind, node *entities.Node) ActionResult {
	return ActionResult{
		Action: action,
		Status: StatusNotImplemented,
		NodeID: node.ID().String(),
		Detail: action.Label() + " has no lookup provider configured",
	}
}
