package config

// Workfile represents the structure of the keel.work.yaml workspace manifest.
type Workfile struct {
	Version  string   `yaml:"version"`
	Projects []string `yaml:"projects"`
}

// ModuleFile represents the structure of a per-module keel.yaml manifest.
// Only the identity coordinates matter to the CLI front end; everything else
// is consumed by the build engine.
type ModuleFile struct {
	Version  string `yaml:"version"`
	Group    string `yaml:"group"`
	Artifact string `yaml:"artifact"`
}
