package ports

import "go.trai.ch/keel/internal/core/domain"

// WorkspaceLoader provides access to the persisted, project-local side of an
// invocation: the multi-module root, the argument file and the project set.
type WorkspaceLoader interface {
	// DiscoverRoot walks up from cwd to find the multi-module root: the first
	// directory containing a .keel directory or a workspace manifest. When
	// neither exists it returns cwd itself. The KEEL_PROJECT_DIR environment
	// variable overrides discovery entirely.
	DiscoverRoot(cwd string) (string, error)

	// LoadArgFile reads and tokenizes .keel/keel.config under root. A missing
	// file is not an error and yields no tokens; a file that cannot be
	// tokenized fails the invocation.
	LoadArgFile(root string) ([]string, error)

	// LoadProjects returns the identity of every module declared in the
	// workspace manifest under root. A missing manifest yields an empty set.
	LoadProjects(root string) ([]domain.ProjectIdentity, error)
}
