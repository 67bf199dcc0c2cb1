// Package redact strips credentials, tokens, database details and file paths
// from error text before it reaches a log line.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedDetailPlaceholder     = "[REDACTED_DETAIL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules run in order; earlier rules may consume text later ones would match.
var rules = []rule{
	// user:password@ in database URLs
	{
		pattern:     regexp.MustCompile(`(?i)\b(?:postgres|postgresql|sqlite|file)://[^@\s/]+@`),
		replacement: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),
		replacement: RedactedJWTPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._~+/=-]+`),
		replacement: "${1}" + RedactedTokenPlaceholder,
	},
	{
		pattern: regexp.MustCompile(
			`(?i)\b(jwt_secret|password_hash|password|passwd|pwd|secret|salt)\s*[=:]\s*['"]?[^'"&\s,]+['"]?`,
		),
		replacement: "${1}=" + RedactedCredentialPlaceholder,
	},
	// PostgreSQL constraint details echo the offending row values
	{
		pattern:     regexp.MustCompile(`Key \([^)]*\)=\([^)]*\)`),
		replacement: "Key " + RedactedDetailPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		replacement: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
