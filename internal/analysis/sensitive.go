package analysis

import "strings"

// RedactionMarker is the literal prefix emitted instead of any content
// for a sensitive path.
const RedactionMarker = "[SENSITIVE FILE EXCLUDED]"

type ruleKind int

const (
	matchSuffix ruleKind = iota
	matchContains
)

type sensitiveRule struct {
	kind    ruleKind
	pattern string
}

// sensitiveRules is the fixed, ordered pattern set. First match wins.
var sensitiveRules = []sensitiveRule{
	// Credential file extensions
	{matchSuffix, ".env"},
	{matchSuffix, ".pem"},
	{matchSuffix, ".key"},
	{matchSuffix, ".cert"},
	{matchSuffix, ".p12"},
	{matchSuffix, ".pfx"},
	// Name fragments that signal secrets
	{matchContains, "credentials."},
	{matchContains, "secret"},
	{matchContains, "password"},
	{matchContains, "token"},
	// Config files that commonly hold secrets
	{matchSuffix, "config.json"},
	{matchSuffix, "settings.json"},
	{matchSuffix, ".htpasswd"},
	{matchSuffix, ".netrc"},
	// Database files
	{matchSuffix, ".sql"},
	{matchSuffix, ".sqlite"},
	{matchSuffix, ".db"},
	// Logs and backups
	{matchSuffix, ".log"},
	{matchSuffix, ".bak"},
	{matchSuffix, ".backup"},
	{matchSuffix, ".swp"},
}

// IsSensitive reports whether a path must never contribute content to
// backend-bound evidence. Pure function, no I/O.
func IsSensitive(path string) bool {
	lowered := strings.ToLower(path)
	for _, rule := range sensitiveRules {
		switch rule.kind {
		case matchSuffix:
			if strings.HasSuffix(lowered, rule.pattern) {
				return true
			}
		case matchContains:
			if strings.Contains(lowered, rule.pattern) {
				return true
			}
		}
	}
	return false
}

// Redact returns the redaction marker line for a path
func Redact(path string) string {
	return RedactionMarker + " " + path
}
