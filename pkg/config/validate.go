package config

import (
	"fmt"
	"regexp"
)

var (
	projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	repositoryPattern  = regexp.MustCompile(`^https://github\.com/([\w-]+)/([\w-]+)$`)
	emailPattern       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Result is the outcome of validating a Config. Errors make the config
// unusable; warnings are advisory and accompany a valid result.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Err converts a failed Result into a ValidationError, or nil when valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

// Validate checks every rule independently and collects all violations, so
// the user sees the complete list of problems in one pass. It is pure:
// no I/O, no mutation of cfg.
func Validate(cfg *Config) Result {
	var errs []string
	var warns []string

	if cfg.ProjectName == "" {
		errs = append(errs, "projectName is required")
	} else if !projectNamePattern.MatchString(cfg.ProjectName) {
		errs = append(errs, fmt.Sprintf("projectName %q may only contain letters, digits, hyphens, and underscores", cfg.ProjectName))
	}

	if cfg.Source.RepositoryURL == "" {
		errs = append(errs, "source.repositoryUrl is required")
	} else if !repositoryPattern.MatchString(cfg.Source.RepositoryURL) {
		errs = append(errs, fmt.Sprintf("source.repositoryUrl %q must look like https://github.com/{owner}/{repo}", cfg.Source.RepositoryURL))
	}

	if cfg.Region == "" {
		errs = append(errs, "region is required")
	} else if !IsKnownRegion(cfg.Region) {
		errs = append(errs, fmt.Sprintf("region %q is not a supported AWS region", cfg.Region))
	}

	if cfg.Domain.CustomDomain != "" {
		if cfg.Domain.CertificateARN == "" {
			errs = append(errs, "domain.certificateArn is required when domain.customDomain is set")
		}
		if cfg.Region != "" && cfg.Region != CertificateRegion {
			warns = append(warns, fmt.Sprintf("CloudFront requires ACM certificates in %s; consider deploying there when using a custom domain", CertificateRegion))
		}
	}

	if cfg.Notification.Email != "" && !emailPattern.MatchString(cfg.Notification.Email) {
		errs = append(errs, fmt.Sprintf("notification.email %q is not a valid email address", cfg.Notification.Email))
	}
	if cfg.Notification.Email == DefaultNotificationEmail {
		warns = append(warns, fmt.Sprintf("notification.email not set; build notifications go to %s", DefaultNotificationEmail))
	}

	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}
