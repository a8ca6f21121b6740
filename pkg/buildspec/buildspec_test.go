package buildspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/rusty428/aws-spa-hosting-kit/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ProjectName: "my-app",
		Build: config.Build{
			InstallCommand:  "npm ci",
			BuildCommand:    "npm run build",
			OutputDirectory: "dist",
		},
	}
}

func TestGenerate(t *testing.T) {
	spec := Generate(testConfig())

	assert.Equal(t, Version, spec.Version)
	assert.Equal(t, []string{"npm ci"}, spec.Install)
	assert.Equal(t, []string{"npm run build"}, spec.Build)
	assert.Equal(t, []string{"**/*"}, spec.Artifacts.Files)
	assert.Equal(t, "dist", spec.Artifacts.BaseDirectory)
}

func TestGenerateIdempotent(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, Generate(cfg), Generate(cfg))
}

func TestGenerateDoesNotAliasConfig(t *testing.T) {
	cfg := testConfig()
	spec := Generate(cfg)

	cfg.Build.BuildCommand = "changed"
	assert.Equal(t, []string{"npm run build"}, spec.Build)
}

func TestToMapShape(t *testing.T) {
	m := Generate(testConfig()).ToMap()

	assert.Equal(t, "0.2", m["version"])

	phases, ok := m["phases"].(map[string]any)
	require.True(t, ok)
	install, ok := phases["install"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"npm ci"}, install["commands"])

	artifacts, ok := m["artifacts"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"**/*"}, artifacts["files"])
	assert.Equal(t, "dist", artifacts["base-directory"])
}

func TestYAMLRoundTrips(t *testing.T) {
	out, err := Generate(testConfig()).YAML()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "0.2", doc["version"])
	assert.Contains(t, doc, "phases")
	assert.Contains(t, doc, "artifacts")
}

func TestGenerateProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := &config.Config{
			Build: config.Build{
				InstallCommand:  rapid.StringMatching(`[a-z][a-z ./-]{0,40}`).Draw(t, "install"),
				BuildCommand:    rapid.StringMatching(`[a-z][a-z ./-]{0,40}`).Draw(t, "build"),
				OutputDirectory: rapid.StringMatching(`[a-z][a-z0-9/-]{0,20}`).Draw(t, "out"),
			},
		}

		first := Generate(cfg)
		second := Generate(cfg)
		if first.Install[0] != cfg.Build.InstallCommand {
			t.Fatalf("install phase %v does not carry the configured command", first.Install)
		}
		if first.Build[0] != cfg.Build.BuildCommand {
			t.Fatalf("build phase %v does not carry the configured command", first.Build)
		}
		if first.Artifacts.BaseDirectory != cfg.Build.OutputDirectory {
			t.Fatalf("base directory %q != %q", first.Artifacts.BaseDirectory, cfg.Build.OutputDirectory)
		}
		if len(first.Install) != 1 || len(first.Build) != 1 {
			t.Fatalf("phases must hold exactly one command each: %v / %v", first.Install, first.Build)
		}
		if first.Artifacts.BaseDirectory != second.Artifacts.BaseDirectory ||
			first.Install[0] != second.Install[0] || first.Build[0] != second.Build[0] {
			t.Fatal("Generate is not referentially transparent")
		}
	})
}
