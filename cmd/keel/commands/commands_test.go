package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/keel/cmd/keel/commands"
	"go.trai.ch/keel/internal/build"
)

type mockApp struct {
	runFunc func(ctx context.Context, args []string) error
}

func (m *mockApp) Run(ctx context.Context, args []string) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, args)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("forwards raw arguments unparsed", func(t *testing.T) {
		var captured []string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, args []string) error {
				captured = args
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "-T", "2", "-Dx=1", "clean", "install"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		// Options stay untouched for the invocation resolver to parse.
		assert.Equal(t, []string{"-T", "2", "-Dx=1", "clean", "install"}, captured)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "install"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("help request goes to cobra, not the app", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"build", "--help"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Options:")
		assert.Contains(t, buf.String(), "--threads")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
