package bus_test

import (
	"context"
	"errors"
	"testing"

	"osintgraph/application/commands/bus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type pingCommand struct {
	Name string
}

func (c pingCommand) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type otherCommand struct{}

func (otherCommand) Validate() error { return nil }

func TestCommandBus_Send(t *testing.T) {
	var order []string
	trace := func(tag string) bus.Middleware {
		return func(next bus.CommandHandler) bus.CommandHandler {
			return bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) (interface{}, error) {
				order = append(order, tag)
				return next.Handle(ctx, cmd)
			})
		}
	}

	b := bus.NewCommandBus(trace("outer"), bus.LoggingMiddleware(zaptest.NewLogger(t)), trace("inner"))
	require.NoError(t, b.Register(pingCommand{}, bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) (interface{}, error) {
		return "pong " + cmd.(pingCommand).Name, nil
	})))

	result, err := b.Send(context.Background(), pingCommand{Name: "canvas"})

	require.NoError(t, err)
	assert.Equal(t, "pong canvas", result)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestCommandBus_Errors(t *testing.T) {
	b := bus.NewCommandBus()
	handler := bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) (interface{}, error) {
		return nil, nil
	})
	require.NoError(t, b.Register(pingCommand{}, handler))

	assert.Error(t, b.Register(pingCommand{}, handler), "duplicate registration")

	_, err := b.Send(context.Background(), pingCommand{})
	assert.EqualError(t, err, "name is required")

	_, err = b.Send(context.Background(), otherCommand{})
	assert.ErrorIs(t, err, bus.ErrHandlerNotFound)
}
