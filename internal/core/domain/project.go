package domain

// Builder ids understood by the build engine.
const (
	// BuilderSinglethreaded runs projects sequentially.
	BuilderSinglethreaded = "singlethreaded"

	// BuilderMultithreaded runs projects concurrently up to the resolved
	// degree of concurrency.
	BuilderMultithreaded = "multithreaded"
)

// ProjectIdentity identifies a module within a workspace by its group and
// artifact coordinates.
type ProjectIdentity struct {
	GroupID    string
	ArtifactID string
}

func (p ProjectIdentity) String() string {
	return p.GroupID + ":" + p.ArtifactID
}

// BuildPlan is the boundary object handed to the build engine. It carries the
// resolved invocation outputs the engine needs and nothing else.
type BuildPlan struct {
	Goals      []string
	Builder    string
	Threads    int
	Projects   []ProjectIdentity
	ResumeFrom string
}

// BuildFailure reports which project's build failed. The application layer
// uses it to suggest a resume-from selector.
type BuildFailure struct {
	Project ProjectIdentity
	Err     error
}

func (f *BuildFailure) Error() string {
	return "project " + f.Project.String() + " failed: " + f.Err.Error()
}

func (f *BuildFailure) Unwrap() error {
	return f.Err
}
