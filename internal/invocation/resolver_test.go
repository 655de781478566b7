package invocation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/keel/internal/adapters/propstore"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/invocation"
)

// fakeWorkspace serves canned argument-file tokens from a fixed root.
type fakeWorkspace struct {
	root       string
	configArgs []string
	projects   []domain.ProjectIdentity
}

func (w *fakeWorkspace) DiscoverRoot(string) (string, error) { return w.root, nil }

func (w *fakeWorkspace) LoadArgFile(string) ([]string, error) { return w.configArgs, nil }

func (w *fakeWorkspace) LoadProjects(string) ([]domain.ProjectIdentity, error) {
	return w.projects, nil
}

func newTestResolver(workspace *fakeWorkspace, store *propstore.Store, colorCapable bool) *invocation.Resolver {
	return invocation.NewResolver(workspace, store, staticTerminal(colorCapable)).
		WithProcessors(4).
		WithEnviron(func() []string { return []string{"HOME=/home/tester"} })
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("defaults without any arguments", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		req, err := resolver.Resolve(nil, "/ws/module")
		require.NoError(t, err)

		assert.Equal(t, "/ws", req.RootDirectory)
		assert.Equal(t, "/ws/module", req.WorkingDirectory)
		assert.Empty(t, req.Goals)
		assert.Equal(t, domain.BuilderSinglethreaded, req.Builder)
		assert.Equal(t, 1, req.DegreeOfConcurrency)
		assert.False(t, req.BatchMode)
		assert.False(t, req.ColorEnabled)
	})

	t.Run("positional arguments become goals", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		req, err := resolver.Resolve([]string{"clean", "-B", "install"}, "/ws")
		require.NoError(t, err)

		assert.Equal(t, []string{"clean", "install"}, req.Goals)
		assert.True(t, req.BatchMode)
	})

	t.Run("live arguments override argument-file defaults", func(t *testing.T) {
		workspace := &fakeWorkspace{root: "/ws", configArgs: []string{"-T", "3", "-Drevision=1.0"}}
		resolver := newTestResolver(workspace, propstore.New(), false)

		req, err := resolver.Resolve([]string{"-T", "5", "install"}, "/ws")
		require.NoError(t, err)

		assert.Equal(t, "5", req.ThreadSpec)
		assert.Equal(t, 5, req.DegreeOfConcurrency)
		assert.Equal(t, "1.0", req.UserProperties.Get("revision"))
	})

	t.Run("live definitions overwrite argument-file definitions", func(t *testing.T) {
		workspace := &fakeWorkspace{root: "/ws", configArgs: []string{"-Drevision=1.3.0"}}
		store := propstore.New()
		resolver := newTestResolver(workspace, store, false)

		req, err := resolver.Resolve([]string{"-Drevision=8.1.0", "-Drevision=8.2.0", "install"}, "/ws")
		require.NoError(t, err)

		assert.Equal(t, "8.2.0", req.UserProperties.Get("revision"))
		stored, ok := store.Get("revision")
		require.True(t, ok)
		assert.Equal(t, "8.2.0", stored)
	})

	t.Run("argument-file defaults apply when the live invocation is silent", func(t *testing.T) {
		workspace := &fakeWorkspace{root: "/ws", configArgs: []string{"-T", "3"}}
		resolver := newTestResolver(workspace, propstore.New(), false)

		req, err := resolver.Resolve([]string{"install"}, "/ws")
		require.NoError(t, err)

		assert.Equal(t, 3, req.DegreeOfConcurrency)
		assert.Equal(t, domain.BuilderMultithreaded, req.Builder)
	})

	t.Run("quoted live arguments are cleaned before parsing", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		req, err := resolver.Resolve([]string{`"-Dlabel=nightly build"`, "install"}, "/ws")
		require.NoError(t, err)

		assert.Equal(t, "nightly build", req.UserProperties.Get("label"))
	})

	t.Run("thread multiplier uses the processor count", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		req, err := resolver.Resolve([]string{"-T", "2.2C"}, "/ws")
		require.NoError(t, err)

		assert.Equal(t, 8, req.DegreeOfConcurrency) // int(2.2 * 4)
		assert.Equal(t, domain.BuilderMultithreaded, req.Builder)
	})

	t.Run("explicit builder survives a thread count", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		req, err := resolver.Resolve([]string{"-b", "singlethreaded", "-T", "4"}, "/ws")
		require.NoError(t, err)

		assert.Equal(t, domain.BuilderSinglethreaded, req.Builder)
		assert.Equal(t, 4, req.DegreeOfConcurrency)
	})

	t.Run("invalid thread count fails the invocation", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		_, err := resolver.Resolve([]string{"-T", "0"}, "/ws")
		require.Error(t, err)
		require.ErrorContains(t, err, domain.ErrInvalidThreadCount.Error())
	})

	t.Run("definitions land in user properties and the store", func(t *testing.T) {
		store := propstore.New()
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, store, false)

		req, err := resolver.Resolve([]string{"-Dx=1", "-D", "z=2", "-Dflag"}, "/ws")
		require.NoError(t, err)

		assert.Equal(t, "1", req.UserProperties.Get("x"))
		assert.Equal(t, "2", req.UserProperties.Get("z"))
		assert.Equal(t, "true", req.UserProperties.Get("flag"))

		stored, ok := store.Get("x")
		require.True(t, ok)
		assert.Equal(t, "1", stored)
	})

	t.Run("environment is mirrored into system properties", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		req, err := resolver.Resolve(nil, "/ws")
		require.NoError(t, err)

		assert.Equal(t, "/home/tester", req.SystemProperties.Get("env.HOME"))
		assert.True(t, req.SystemProperties.Has("keel.version"))
		assert.True(t, req.SystemProperties.Has("keel.build.date"))
	})

	t.Run("profile and project selectors accumulate across occurrences", func(t *testing.T) {
		workspace := &fakeWorkspace{root: "/ws", configArgs: []string{"-P", "release"}}
		resolver := newTestResolver(workspace, propstore.New(), false)

		req, err := resolver.Resolve([]string{"-P", "!release,?nightly", "-p", "core,-legacy"}, "/ws")
		require.NoError(t, err)

		assert.Equal(t, []string{"release"}, req.Profiles.RequiredInactiveIDs())
		assert.Equal(t, []string{"nightly"}, req.Profiles.OptionalActiveIDs())
		assert.Equal(t, []string{"core"}, req.Projects.RequiredActiveIDs())
		assert.Equal(t, []string{"legacy"}, req.Projects.RequiredInactiveIDs())
	})

	t.Run("explicit color property beats batch mode", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		req, err := resolver.Resolve([]string{"-Dstyle.color=always", "-B", "-l", "build.log"}, "/ws")
		require.NoError(t, err)

		assert.True(t, req.ColorEnabled)
		assert.Equal(t, "build.log", req.LogFile)
	})

	t.Run("unsupported color value fails the invocation", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		_, err := resolver.Resolve([]string{"-Dstyle.color=maybe"}, "/ws")
		require.Error(t, err)
		require.ErrorContains(t, err, domain.ErrInvalidColorValue.Error())
	})

	t.Run("unknown options fail the parse", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		_, err := resolver.Resolve([]string{"--no-such-option"}, "/ws")
		require.Error(t, err)
		require.ErrorContains(t, err, domain.ErrCommandLineParseFailed.Error())
	})

	t.Run("resume and project file options are captured", func(t *testing.T) {
		resolver := newTestResolver(&fakeWorkspace{root: "/ws"}, propstore.New(), false)

		req, err := resolver.Resolve([]string{"-r", ":core", "-f", "alt.yaml"}, "/ws")
		require.NoError(t, err)

		assert.Equal(t, ":core", req.ResumeFrom)
		assert.Equal(t, "alt.yaml", req.ProjectFile)
	})
}
