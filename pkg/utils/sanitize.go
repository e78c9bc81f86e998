// Package utils provides small helpers shared across packages.
package utils

import (
	"regexp"
	"strings"
)

// SensitivePatterns contains regex patterns for secrets that must not reach the log.
var SensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(password|secret|token)\s*[:=]\s*['"]?([^\s'"]{4,})['"]?`),
}

// phonePattern matches BR phone numbers standing on their own. Digit runs
// glued to letters or hyphens (uuids, hashes) are left alone.
var phonePattern = regexp.MustCompile(`(^|[^\w-])(\+?\d{2}\s?\(?\d{2}\)?\s?9?\d{4}[-\s]?\d{4})($|[^\w-])`)

var emailPattern = regexp.MustCompile(`([A-Za-z0-9._%+\-])[A-Za-z0-9._%+\-]*@([A-Za-z0-9.\-]+\.[A-Za-z]{2,})`)

// SanitizeLog removes personal and secret information from log messages.
// E-mail addresses keep their first character and domain.
func SanitizeLog(message string) string {
	result := emailPattern.ReplaceAllStringFunc(message, MaskEmail)
	result = phonePattern.ReplaceAllString(result, "${1}***REDACTED***${3}")

	for _, pattern := range SensitivePatterns {
		result = pattern.ReplaceAllStringFunc(result, func(match string) string {
			if key, _, ok := strings.Cut(match, ":"); ok {
				return key + ": ***REDACTED***"
			}
			if key, _, ok := strings.Cut(match, "="); ok {
				return key + "=***REDACTED***"
			}
			return "***REDACTED***"
		})
	}

	return result
}

// MaskEmail hides the local part of an address, keeping its first character.
func MaskEmail(addr string) string {
	local, domain, ok := strings.Cut(addr, "@")
	if !ok || local == "" {
		return "***"
	}
	return local[:1] + "***@" + domain
}
