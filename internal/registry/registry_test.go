package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRegisterAndGet(t *testing.T) {
	errSentinel := errors.New("ran")
	var got core.RuntimeConfig

	Register("test-get", "records its config", func(_ context.Context, cfg core.RuntimeConfig, _ Options) error {
		got = cfg
		return errSentinel
	})

	run, err := Get("test-get")
	require.NoError(t, err)

	cfg := core.DefaultConfig()
	cfg.Seed = 7
	assert.ErrorIs(t, run(context.Background(), cfg, Options{}), errSentinel)
	assert.Equal(t, int64(7), got.Seed)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no-such-backend")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `registry: unknown backend "no-such-backend"`)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	noop := func(context.Context, core.RuntimeConfig, Options) error { return nil }
	Register("test-dup", "first", noop)

	assert.PanicsWithValue(t, `registry: backend "test-dup" already registered`, func() {
		Register("test-dup", "second", noop)
	})
}

func TestListSorted(t *testing.T) {
	noop := func(context.Context, core.RuntimeConfig, Options) error { return nil }
	Register("test-list-b", "b", noop)
	Register("test-list-a", "a", noop)

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name)
	}

	var names []string
	for _, info := range list {
		names = append(names, info.Name)
	}
	assert.Subset(t, names, []string{"test-list-a", "test-list-b"})
}
