package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() *Config {
	cfg := &Config{
		ProjectName: "my-app",
		Source: Source{
			RepositoryURL: "https://github.com/acme/site",
		},
		Region: "us-east-1",
	}
	applyDefaults(cfg)
	return cfg
}

func errorsMentioning(result Result, field string) []string {
	var out []string
	for _, msg := range result.Errors {
		if strings.Contains(msg, field) {
			out = append(out, msg)
		}
	}
	return out
}

func TestValidateMinimalConfig(t *testing.T) {
	result := Validate(validConfig())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.NoError(t, result.Err())
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := &Config{
		ProjectName: "bad name!",
		Source:      Source{RepositoryURL: "not-a-url"},
		Region:      "nowhere-1",
	}
	applyDefaults(cfg)

	result := Validate(cfg)
	require.False(t, result.Valid)
	assert.NotEmpty(t, errorsMentioning(result, "projectName"))
	assert.NotEmpty(t, errorsMentioning(result, "repositoryUrl"))
	assert.NotEmpty(t, errorsMentioning(result, "region"))
	assert.True(t, IsValidation(result.Err()))
}

func TestValidateMissingRequiredFields(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	result := Validate(cfg)
	require.False(t, result.Valid)
	for _, field := range []string{"projectName", "source.repositoryUrl", "region"} {
		assert.NotEmpty(t, errorsMentioning(result, field), "no error mentions %s", field)
	}
}

func TestValidateRepositoryURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://github.com/acme/site", true},
		{"https://github.com/acme-corp/my_site-2", true},
		{"not-a-url", false},
		{"http://github.com/acme/site", false},
		{"https://gitlab.com/acme/site", false},
		{"https://github.com/acme", false},
		{"https://github.com/acme/site/extra", false},
	}
	for _, tt := range tests {
		cfg := validConfig()
		cfg.Source.RepositoryURL = tt.url
		result := Validate(cfg)
		if tt.valid {
			assert.True(t, result.Valid, "url %q should be accepted: %v", tt.url, result.Errors)
		} else {
			assert.NotEmpty(t, errorsMentioning(result, "repositoryUrl"), "url %q should be rejected", tt.url)
		}
	}
}

func TestValidateCustomDomainRequiresCertificate(t *testing.T) {
	cfg := validConfig()
	cfg.Domain.CustomDomain = "example.com"

	result := Validate(cfg)
	require.False(t, result.Valid)
	assert.NotEmpty(t, errorsMentioning(result, "certificateArn"))
}

func TestValidateCertificateRegionWarning(t *testing.T) {
	cfg := validConfig()
	cfg.Region = "us-west-2"
	cfg.Domain.CustomDomain = "example.com"
	cfg.Domain.CertificateARN = "arn:aws:acm:us-east-1:123456789012:certificate/abc"

	result := Validate(cfg)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)

	var found bool
	for _, w := range result.Warnings {
		if strings.Contains(w, CertificateRegion) {
			found = true
		}
	}
	assert.True(t, found, "expected a warning recommending %s, got %v", CertificateRegion, result.Warnings)
}

func TestValidateNoRegionWarningWithoutCustomDomain(t *testing.T) {
	cfg := validConfig()
	cfg.Region = "us-west-2"

	result := Validate(cfg)
	assert.True(t, result.Valid)
	for _, w := range result.Warnings {
		assert.NotContains(t, w, CertificateRegion)
	}
}

func TestValidateNotificationEmail(t *testing.T) {
	cfg := validConfig()
	cfg.Notification.Email = "not-an-email"

	result := Validate(cfg)
	require.False(t, result.Valid)
	assert.NotEmpty(t, errorsMentioning(result, "notification.email"))
}

func TestValidateFallbackEmailWarns(t *testing.T) {
	result := Validate(validConfig())

	require.True(t, result.Valid)
	var found bool
	for _, w := range result.Warnings {
		if strings.Contains(w, DefaultNotificationEmail) {
			found = true
		}
	}
	assert.True(t, found, "expected a fallback-address warning, got %v", result.Warnings)
}

func TestValidateIsPure(t *testing.T) {
	cfg := validConfig()
	cfg.Region = "us-west-2"
	cfg.Domain.CustomDomain = "example.com"
	cfg.Domain.CertificateARN = "arn:aws:acm:us-east-1:123456789012:certificate/abc"
	before := *cfg

	first := Validate(cfg)
	second := Validate(cfg)

	assert.Equal(t, before, *cfg)
	assert.Equal(t, first, second)
}

func TestValidateProjectNameProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z0-9_-]{1,64}`).Draw(t, "name")
		cfg := validConfig()
		cfg.ProjectName = name
		result := Validate(cfg)
		if !result.Valid {
			t.Fatalf("projectName %q rejected: %v", name, result.Errors)
		}
	})
}

func TestOwnerRepo(t *testing.T) {
	owner, repo := (Source{RepositoryURL: "https://github.com/acme/site"}).OwnerRepo()
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "site", repo)

	owner, repo = (Source{RepositoryURL: "not-a-url"}).OwnerRepo()
	assert.Empty(t, owner)
	assert.Empty(t, repo)
}
