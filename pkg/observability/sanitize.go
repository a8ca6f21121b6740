package observability

import "strings"

// SanitizeLogString removes line breaks that could enable log forging.
// Every user-supplied configuration value passes through here before it is
// logged.
func SanitizeLogString(value string) string {
	if value == "" {
		return value
	}
	value = strings.ReplaceAll(value, "\r", "")
	value = strings.ReplaceAll(value, "\n", "")
	return value
}
