package session_test

import (
	"sync"
	"testing"

	"osintgraph/application/interaction"
	"osintgraph/application/session"
	"osintgraph/domain/core/aggregates"
	"osintgraph/domain/events"
	pkgerrors "osintgraph/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_OpenGetClose(t *testing.T) {
	r := session.NewRegistry(session.Options{}, nil, nil)

	s, err := r.Open("  Acme breach  ")
	require.NoError(t, err)
	assert.Equal(t, "Acme breach", s.Case())
	assert.NotEmpty(t, s.ID())

	got, err := r.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	assert.True(t, r.Close(s.ID()))
	assert.False(t, r.Close(s.ID()))

	_, err = r.Get(s.ID())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestRegistry_OpenValidation(t *testing.T) {
	r := session.NewRegistry(session.Options{MaxSessions: 1}, nil, nil)

	_, err := r.Open("")
	assert.True(t, pkgerrors.IsValidation(err))

	_, err = r.Open("first")
	require.NoError(t, err)

	_, err = r.Open("second")
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeLimitExceeded))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SessionsHaveSeparateGraphs(t *testing.T) {
	r := session.NewRegistry(session.Options{}, nil, nil)
	a, err := r.Open("a")
	require.NoError(t, err)
	b, err := r.Open("b")
	require.NoError(t, err)

	_, err = a.Mutate(func(c *interaction.Controller) error {
		_, err := c.Drop(interaction.DropEvent{Payload: "google"})
		return err
	})
	require.NoError(t, err)

	b.Read(func(g *aggregates.Graph) {
		assert.Zero(t, g.NodeCount())
	})
	assert.Len(t, r.List(), 2)
}

func TestSession_MutateDrainsEvents(t *testing.T) {
	r := session.NewRegistry(session.Options{}, nil, nil)
	s, err := r.Open("case")
	require.NoError(t, err)

	evts, err := s.Mutate(func(c *interaction.Controller) error {
		_, err := c.Drop(interaction.DropEvent{Payload: "result"})
		return err
	})
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, events.TypeNodeAdded, evts[0].GetEventType())

	evts, err = s.Mutate(func(c *interaction.Controller) error {
		_, err := c.Drop(interaction.DropEvent{Payload: ""})
		return err
	})
	assert.True(t, pkgerrors.IsInvalidDropPayload(err))
	assert.Empty(t, evts)
}

func TestSession_ConcurrentDrops(t *testing.T) {
	r := session.NewRegistry(session.Options{}, nil, nil)
	s, err := r.Open("case")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Mutate(func(c *interaction.Controller) error {
				_, err := c.Drop(interaction.DropEvent{Payload: "website"})
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	s.Read(func(g *aggregates.Graph) {
		assert.Equal(t, 20, g.NodeCount())
		assert.NoError(t, g.Validate())
	})
}
