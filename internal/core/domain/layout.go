// Package domain holds the core value types of the keel CLI front end.
package domain

import "path/filepath"

const (
	// KeelDirName is the name of the project-local metadata directory.
	KeelDirName = ".keel"

	// ArgFileName is the name of the persisted argument file inside KeelDirName.
	ArgFileName = "keel.config"

	// ModuleFileName is the name of the per-module manifest.
	ModuleFileName = "keel.yaml"

	// WorkFileName is the name of the workspace manifest at the multi-module root.
	WorkFileName = "keel.work.yaml"

	// ProjectDirEnv overrides multi-module root discovery when set.
	ProjectDirEnv = "KEEL_PROJECT_DIR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ArgFilePath returns the path of the persisted argument file under root.
func ArgFilePath(root string) string {
	return filepath.Join(root, KeelDirName, ArgFileName)
}

// WorkFilePath returns the path of the workspace manifest under root.
func WorkFilePath(root string) string {
	return filepath.Join(root, WorkFileName)
}
