// Package buildspec derives the CodeBuild build-specification document from
// a deployment configuration.
package buildspec

import (
	"gopkg.in/yaml.v3"

	"github.com/rusty428/aws-spa-hosting-kit/pkg/config"
)

// Version is the buildspec schema version CodeBuild expects.
const Version = "0.2"

// artifactGlob matches every file under the artifact base directory.
const artifactGlob = "**/*"

// Spec is a read-only projection of a Config: ordered command lists per
// phase plus the artifact rule. It is recomputed fresh on each Generate
// call and never mutated or cached.
type Spec struct {
	Version   string
	Install   []string
	Build     []string
	Artifacts ArtifactRule
}

// ArtifactRule selects the build output to upload: a file glob applied
// relative to a base directory.
type ArtifactRule struct {
	Files         []string
	BaseDirectory string
}

// Generate derives the build specification for cfg.
//
// It is pure and total: no I/O, no failure modes given a valid Config, and
// the same input always yields the same output.
func Generate(cfg *config.Config) Spec {
	return Spec{
		Version: Version,
		Install: []string{cfg.Build.InstallCommand},
		Build:   []string{cfg.Build.BuildCommand},
		Artifacts: ArtifactRule{
			Files:         []string{artifactGlob},
			BaseDirectory: cfg.Build.OutputDirectory,
		},
	}
}

// ToMap returns the object form of the document, shaped exactly as
// CodeBuild consumes it. CDK's BuildSpec.fromObject takes this directly.
func (s Spec) ToMap() map[string]any {
	return map[string]any{
		"version": s.Version,
		"phases": map[string]any{
			"install": map[string]any{
				"commands": append([]string(nil), s.Install...),
			},
			"build": map[string]any{
				"commands": append([]string(nil), s.Build...),
			},
		},
		"artifacts": map[string]any{
			"files":          append([]string(nil), s.Artifacts.Files...),
			"base-directory": s.Artifacts.BaseDirectory,
		},
	}
}

// YAML renders the document for operator inspection or checked-in
// buildspec.yml workflows.
func (s Spec) YAML() ([]byte, error) {
	return yaml.Marshal(s.ToMap())
}
