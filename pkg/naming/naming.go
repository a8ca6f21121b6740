// Package naming produces deterministic AWS resource names namespaced by
// the project name. Every derived resource name flows through here so the
// project namespace is applied in exactly one place.
package naming

import (
	"regexp"
	"strings"
)

var (
	nonAlnum  = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// maxBucketNameLen is the S3 bucket name limit.
const maxBucketNameLen = 63

func sanitizePart(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "_", "-")
	value = strings.ReplaceAll(value, " ", "-")
	value = nonAlnum.ReplaceAllString(value, "-")
	value = multiDash.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	return value
}

func resourceName(project, resource string) string {
	parts := []string{sanitizePart(project)}
	if r := sanitizePart(resource); r != "" {
		parts = append(parts, r)
	}
	return strings.Join(parts, "-")
}

// StackName returns the CloudFormation stack name for a project.
func StackName(project string) string {
	return resourceName(project, "spa-hosting")
}

// SiteBucketName returns the S3 bucket holding the built site.
//
// Bucket names are global and limited to 63 lowercase characters; the
// region suffix keeps multi-region deployments of the same project from
// colliding.
func SiteBucketName(project, region string) string {
	name := resourceName(project, "site-"+region)
	if len(name) > maxBucketNameLen {
		name = name[:maxBucketNameLen]
	}
	return strings.Trim(name, "-")
}

// BuildProjectName returns the CodeBuild project name.
func BuildProjectName(project string) string {
	return resourceName(project, "build")
}

// TopicName returns the SNS notification topic name.
func TopicName(project string) string {
	return resourceName(project, "notifications")
}
