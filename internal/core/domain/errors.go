package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidThreadCount is returned when a degree-of-concurrency spec is malformed
	// or does not yield a positive thread count.
	ErrInvalidThreadCount = zerr.New("invalid thread count, expected a positive integer or a per-core multiplier such as 1.0C")

	// ErrInvalidColorValue is returned when the style.color property holds an unrecognized value.
	ErrInvalidColorValue = zerr.New("invalid color configuration value, expected 'always', 'never' or 'auto'")

	// ErrArgFileCorrupt is returned when the persisted argument file cannot be tokenized.
	ErrArgFileCorrupt = zerr.New("malformed argument file")

	// ErrArgFileReadFailed is returned when the persisted argument file exists but cannot be read.
	ErrArgFileReadFailed = zerr.New("failed to read argument file")

	// ErrCommandLineParseFailed is returned when the merged argument vector is rejected
	// by the option parser.
	ErrCommandLineParseFailed = zerr.New("failed to parse command line")

	// ErrWorkspaceReadFailed is returned when the workspace manifest cannot be read.
	ErrWorkspaceReadFailed = zerr.New("failed to read workspace manifest")

	// ErrManifestParseFailed is returned when a project manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse project manifest")

	// ErrMissingProjectCoordinates is returned when a project manifest lacks a group or artifact id.
	ErrMissingProjectCoordinates = zerr.New("project manifest must declare group and artifact")

	// ErrNoGoalsSpecified is returned when an invocation names no goals to run.
	ErrNoGoalsSpecified = zerr.New("no goals have been specified for this build")

	// ErrUnknownBuilder is returned when the requested build strategy id is not registered.
	ErrUnknownBuilder = zerr.New("unknown builder id, expected 'singlethreaded' or 'multithreaded'")

	// ErrLogFileOpenFailed is returned when the requested build log file cannot be opened.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
