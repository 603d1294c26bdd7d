package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tldr/cmd/tldr/commands"
	"go.trai.ch/tldr/internal/app"
	"go.trai.ch/tldr/internal/build"
)

type mockApp struct {
	transformFunc func(ctx context.Context, ids []string, opts app.RunOptions) error
	buildFunc     func(ctx context.Context, entries []string, opts app.BuildOptions) error
	cleanCalled   bool
	configPath    string
	jsonLogs      bool
}

func (m *mockApp) Transform(ctx context.Context, ids []string, opts app.RunOptions) error {
	if m.transformFunc != nil {
		return m.transformFunc(ctx, ids, opts)
	}
	return nil
}

func (m *mockApp) Build(ctx context.Context, entries []string, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, entries, opts)
	}
	return nil
}

func (m *mockApp) Clean(_ context.Context) error {
	m.cleanCalled = true
	return nil
}

func (m *mockApp) SetConfigPath(path string) {
	m.configPath = path
}

func (m *mockApp) SetJSONLogs(enable bool) {
	m.jsonLogs = enable
}

func TestCommands_Transform(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedIDs []string

		mock := &mockApp{
			transformFunc: func(_ context.Context, ids []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedIDs = ids
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"transform", "sketch.tldr?format=png&tldr", "--no-cache", "--verbose", "--metadata",
			"--config", "docs/tldr.yaml", "--json",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, app.RunOptions{NoCache: true, Verbose: true, Metadata: true}, capturedOpts)
		assert.Equal(t, []string{"sketch.tldr?format=png&tldr"}, capturedIDs)
		assert.Equal(t, "docs/tldr.yaml", mock.configPath)
		assert.True(t, mock.jsonLogs)
	})

	t.Run("returns error on transform failure", func(t *testing.T) {
		mock := &mockApp{
			transformFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"transform", "sketch.tldr"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no imports provided", func(t *testing.T) {
		mock := &mockApp{
			transformFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"transform"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Build(t *testing.T) {
	var capturedOpts app.BuildOptions
	var capturedEntries []string

	mock := &mockApp{
		buildFunc: func(_ context.Context, entries []string, opts app.BuildOptions) error {
			capturedOpts = opts
			capturedEntries = entries
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"build", "src/main.ts", "-o", "public", "--minify", "-n"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"src/main.ts"}, capturedEntries)
	assert.Equal(t, app.BuildOptions{
		RunOptions: app.RunOptions{NoCache: true},
		Outdir:     "public",
		Minify:     true,
	}, capturedOpts)
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, mock.cleanCalled)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "tldr version "+build.Version+"\n", buf.String())
}
