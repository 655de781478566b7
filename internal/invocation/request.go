package invocation

import (
	"github.com/spf13/pflag"
	"go.trai.ch/keel/internal/core/domain"
)

// Request is the fully normalized form of one CLI invocation. It is created
// once per process invocation, populated by the Resolver and read-only for
// the rest of the build pipeline.
type Request struct {
	// RawArgs is the process argument vector as captured, never mutated.
	RawArgs []string

	// MergedArgs is the final argument vector after argument-file merging
	// and quote cleanup, as handed to the option parser.
	MergedArgs []string

	// Options is the parsed-options view over MergedArgs.
	Options *pflag.FlagSet

	WorkingDirectory string
	RootDirectory    string
	ProjectFile      string

	SystemProperties *domain.Properties
	UserProperties   *domain.Properties

	Profiles domain.Activation
	Projects domain.Activation

	Goals      []string
	Builder    string
	ThreadSpec string

	// DegreeOfConcurrency is the resolved positive thread count, 1 unless a
	// threads option was given.
	DegreeOfConcurrency int

	BatchMode    bool
	LogFile      string
	ColorEnabled bool
	ResumeFrom   string
}

// NewRequest captures the raw argument vector and working directory for one
// invocation. All other fields are populated by Resolver.Resolve.
func NewRequest(args []string, workingDir string) *Request {
	raw := make([]string, len(args))
	copy(raw, args)

	return &Request{
		RawArgs:             raw,
		WorkingDirectory:    workingDir,
		SystemProperties:    domain.NewProperties(),
		UserProperties:      domain.NewProperties(),
		Builder:             domain.BuilderSinglethreaded,
		DegreeOfConcurrency: 1,
	}
}
