// Package config loads and validates the deployment configuration for a
// single-page-application hosting stack.
//
// A Config is either fully valid or rejected before any resource
// definitions are produced; Validate collects every violation in one pass
// instead of failing on the first.
package config

// Config is the user-supplied deployment specification.
//
// Field tags match the documented YAML document format exactly.
type Config struct {
	ProjectName  string       `yaml:"projectName"`
	Source       Source       `yaml:"source"`
	Region       string       `yaml:"region"`
	Domain       Domain       `yaml:"domain"`
	Notification Notification `yaml:"notification"`
	Build        Build        `yaml:"build"`
}

type Source struct {
	RepositoryURL string `yaml:"repositoryUrl"`
	Branch        string `yaml:"branch"`
}

// OwnerRepo splits a valid repository URL into its GitHub owner and repo
// name. Both are empty when the URL does not match the required pattern.
func (s Source) OwnerRepo() (owner, repo string) {
	m := repositoryPattern.FindStringSubmatch(s.RepositoryURL)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}

type Domain struct {
	CustomDomain   string `yaml:"customDomain"`
	CertificateARN string `yaml:"certificateArn"`
}

type Notification struct {
	Email string `yaml:"email"`
}

type Build struct {
	InstallCommand  string `yaml:"installCommand"`
	BuildCommand    string `yaml:"buildCommand"`
	OutputDirectory string `yaml:"outputDirectory"`
}

const (
	DefaultBranch          = "main"
	DefaultInstallCommand  = "npm ci"
	DefaultBuildCommand    = "npm run build"
	DefaultOutputDirectory = "dist"

	// DefaultNotificationEmail is substituted when notification.email is
	// absent. Exported so callers can detect the fallback; Validate emits a
	// warning when it is in effect.
	DefaultNotificationEmail = "maintainers@spa-hosting.dev"
)

// applyDefaults fills every optional field that carries a documented
// default. Required fields are left untouched so Validate can report them.
func applyDefaults(cfg *Config) {
	if cfg.Source.Branch == "" {
		cfg.Source.Branch = DefaultBranch
	}
	if cfg.Notification.Email == "" {
		cfg.Notification.Email = DefaultNotificationEmail
	}
	if cfg.Build.InstallCommand == "" {
		cfg.Build.InstallCommand = DefaultInstallCommand
	}
	if cfg.Build.BuildCommand == "" {
		cfg.Build.BuildCommand = DefaultBuildCommand
	}
	if cfg.Build.OutputDirectory == "" {
		cfg.Build.OutputDirectory = DefaultOutputDirectory
	}
}
