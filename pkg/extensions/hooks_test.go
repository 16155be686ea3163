package extensions_test

import (
	"context"
	"errors"
	"testing"

	"osintgraph/pkg/extensions"

	"github.com/stretchr/testify/assert"
)

func TestHookManager_ExecuteRunsAllHooks(t *testing.T) {
	m := extensions.NewHookManager()
	var calls []string

	m.Register(extensions.HookAfterGraphMutation, func(ctx context.Context, data interface{}) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	m.Register(extensions.HookAfterGraphMutation, func(ctx context.Context, data interface{}) error {
		calls = append(calls, "second:"+data.(string))
		return nil
	})

	err := m.Execute(context.Background(), extensions.HookAfterGraphMutation, "x")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, []string{"first", "second:x"}, calls)
	assert.Equal(t, 2, m.Count(extensions.HookAfterGraphMutation))

	m.Clear(extensions.HookAfterGraphMutation)
	assert.NoError(t, m.Execute(context.Background(), extensions.HookAfterGraphMutation, nil))
}
