// Package config loads the persisted, project-local side of an invocation:
// the multi-module root, the argument file and the workspace project set.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.WorkspaceLoader against the filesystem.
type Loader struct {
	fs     FileSystem
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{fs: NewOSFS(), logger: logger}
}

// WithFileSystem replaces the filesystem seam. Used for testing.
func (l *Loader) WithFileSystem(fsys FileSystem) *Loader {
	l.fs = fsys
	return l
}

// DiscoverRoot finds the multi-module root for cwd. The KEEL_PROJECT_DIR
// environment variable wins outright; otherwise the first ancestor directory
// (including cwd) containing a .keel directory or a workspace manifest is the
// root, and cwd itself is the fallback.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	if dir := os.Getenv(domain.ProjectDirEnv); dir != "" {
		return dir, nil
	}

	currentDir := cwd
	for {
		if _, err := l.fs.Stat(filepath.Join(currentDir, domain.KeelDirName)); err == nil {
			return currentDir, nil
		}
		if _, err := l.fs.Stat(domain.WorkFilePath(currentDir)); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return cwd, nil
}

// LoadProjects reads the workspace manifest under root and the keel.yaml of
// every project it lists, returning the workspace's project identities. A
// missing workspace manifest yields an empty set.
func (l *Loader) LoadProjects(root string) ([]domain.ProjectIdentity, error) {
	workfilePath := domain.WorkFilePath(root)

	data, err := l.fs.ReadFile(workfilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkspaceReadFailed.Error()), "path", workfilePath)
	}

	var workfile Workfile
	if err := yaml.Unmarshal(data, &workfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", workfilePath)
	}
	if workfile.Version == "" {
		l.logger.Warn("workspace manifest declares no version, assuming \"1\"")
	}

	projects := make([]domain.ProjectIdentity, 0, len(workfile.Projects))
	for _, dir := range workfile.Projects {
		identity, err := l.loadModuleIdentity(filepath.Join(root, dir, domain.ModuleFileName))
		if err != nil {
			return nil, err
		}
		projects = append(projects, identity)
	}
	return projects, nil
}

func (l *Loader) loadModuleIdentity(path string) (domain.ProjectIdentity, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return domain.ProjectIdentity{}, zerr.With(zerr.Wrap(err, domain.ErrWorkspaceReadFailed.Error()), "path", path)
	}

	var module ModuleFile
	if err := yaml.Unmarshal(data, &module); err != nil {
		return domain.ProjectIdentity{}, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	if module.Group == "" || module.Artifact == "" {
		return domain.ProjectIdentity{}, zerr.With(domain.ErrMissingProjectCoordinates, "path", path)
	}

	return domain.ProjectIdentity{GroupID: module.Group, ArtifactID: module.Artifact}, nil
}
