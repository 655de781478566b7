// Package invocation turns raw process arguments plus the persisted argument
// file into a single normalized Request consumed by the build pipeline. It
// hosts the selector, concurrency, property and color mini-language parsers
// and the argument source merger.
package invocation

import (
	"io"
	"os"
	"runtime"
	"strings"

	"go.trai.ch/keel/internal/build"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver populates a Request from an argument vector. All parsing is
// synchronous; every failure surfaces immediately, before any build work
// starts.
type Resolver struct {
	workspace  ports.WorkspaceLoader
	store      ports.PropertyStore
	terminal   ports.Terminal
	processors int
	environ    func() []string
}

// NewResolver creates a Resolver using the host processor count and process
// environment.
func NewResolver(workspace ports.WorkspaceLoader, store ports.PropertyStore, terminal ports.Terminal) *Resolver {
	return &Resolver{
		workspace:  workspace,
		store:      store,
		terminal:   terminal,
		processors: runtime.NumCPU(),
		environ:    os.Environ,
	}
}

// WithProcessors overrides the detected processor count. Used for testing.
func (r *Resolver) WithProcessors(n int) *Resolver {
	r.processors = n
	return r
}

// WithEnviron overrides the process environment source. Used for testing.
func (r *Resolver) WithEnviron(environ func() []string) *Resolver {
	r.environ = environ
	return r
}

// Resolve runs the full invocation pipeline: discover the multi-module root,
// merge the persisted argument file with the live arguments, parse options,
// then resolve properties, activations, concurrency and the color policy.
func (r *Resolver) Resolve(args []string, cwd string) (*Request, error) {
	req := NewRequest(args, cwd)

	root, err := r.workspace.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}
	req.RootDirectory = root

	configArgs, err := r.workspace.LoadArgFile(root)
	if err != nil {
		return nil, err
	}
	req.MergedArgs = Merge(configArgs, req.RawArgs)

	fs := NewFlagSet()
	fs.SetOutput(io.Discard)
	if err := fs.Parse(req.MergedArgs); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCommandLineParseFailed.Error())
	}
	req.Options = fs
	req.Goals = fs.Args()

	r.resolveProperties(req)

	profileLists, _ := fs.GetStringArray(OptActivateProfiles)
	for _, list := range profileLists {
		ParseActivation(list, &req.Profiles)
	}
	projectLists, _ := fs.GetStringArray(OptProjects)
	for _, list := range projectLists {
		ParseActivation(list, &req.Projects)
	}

	if err := r.resolveConcurrency(req); err != nil {
		return nil, err
	}

	req.BatchMode, _ = fs.GetBool(OptBatchMode)
	req.LogFile, _ = fs.GetString(OptLogFile)
	req.ProjectFile, _ = fs.GetString(OptFile)
	req.ResumeFrom, _ = fs.GetString(OptResumeFrom)

	// The explicit override lives in the user properties, so this must run
	// after property resolution.
	enabled, err := ResolveColor(req.UserProperties, req.BatchMode, req.LogFile, r.terminal)
	if err != nil {
		return nil, err
	}
	req.ColorEnabled = enabled

	return req, nil
}

func (r *Resolver) resolveProperties(req *Request) {
	for _, kv := range r.environ() {
		key, value, _ := strings.Cut(kv, "=")
		req.SystemProperties.Set("env."+key, value)
	}
	req.SystemProperties.Set("keel.version", build.Version)
	req.SystemProperties.Set("keel.build.date", build.Date)

	defs, _ := req.Options.GetStringArray(OptDefine)
	ResolveProperties(defs, req.UserProperties, r.store)
}

func (r *Resolver) resolveConcurrency(req *Request) error {
	spec, _ := req.Options.GetString(OptThreads)
	if builder, _ := req.Options.GetString(OptBuilder); builder != "" {
		req.Builder = builder
	}
	if spec == "" {
		return nil
	}

	threads, err := DegreeOfConcurrency(spec, r.processors)
	if err != nil {
		return err
	}
	req.ThreadSpec = spec
	req.DegreeOfConcurrency = threads

	// A thread count without an explicit builder implies the parallel one.
	if !req.Options.Changed(OptBuilder) {
		req.Builder = domain.BuilderMultithreaded
	}
	return nil
}
