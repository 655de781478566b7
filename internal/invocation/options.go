package invocation

import "github.com/spf13/pflag"

// Option names understood by the build front end. The short forms follow the
// conventional build-tool surface (-B, -D, -P, -T, ...).
const (
	OptBatchMode        = "batch-mode"
	OptBuilder          = "builder"
	OptThreads          = "threads"
	OptDefine           = "define"
	OptActivateProfiles = "activate-profiles"
	OptProjects         = "projects"
	OptResumeFrom       = "resume-from"
	OptLogFile          = "log-file"
	OptFile             = "file"
)

// NewFlagSet builds the canonical flag set for a build invocation. Single-valued
// options resolve last-wins when repeated, which is what gives live command-line
// arguments precedence over persisted argument-file defaults after merging.
// Positional goals may be interspersed with options; unknown options fail the parse.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("keel", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.BoolP(OptBatchMode, "B", false, "Run in non-interactive mode, disabling color output")
	fs.StringP(OptBuilder, "b", "", "The id of the build strategy to use")
	fs.StringP(OptThreads, "T", "", "Thread count or per-core multiplier, e.g. 2.0C")
	fs.StringArrayP(OptDefine, "D", nil, "Define a user property (-Dname or -Dname=value)")
	fs.StringArrayP(OptActivateProfiles, "P", nil, "Comma-delimited list of profiles to activate or deactivate")
	fs.StringArrayP(OptProjects, "p", nil, "Comma-delimited list of projects to include or exclude")
	fs.StringP(OptResumeFrom, "r", "", "Resume the build from the specified project")
	fs.StringP(OptLogFile, "l", "", "Write all build output to the given file")
	fs.StringP(OptFile, "f", "", "Use an alternate project file")
	return fs
}
