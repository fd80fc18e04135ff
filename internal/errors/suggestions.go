package errors

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
)

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrEmptyStore:     "Add quotes with 'quotd add' or delete the quotes file to restore the defaults.",
	ErrNoCurrentQuote: "Show a quote first with 'quotd today' or 'quotd random'.",
	ErrInvalidDate:    "Try formats like 'yesterday', 'last friday', '2024-03-01' or '3 days ago'.",
	ErrInvalidQuote:   "A quote needs non-empty text and an author.",
	ErrUnknownFormat:  "Use a .json, .yaml or .yml file, optionally ending in .gz, .xz or .zst.",
	ErrInvalidConfig:  "Fix the config file or the QUOTD_* variable named above.",

	// System errors
	ErrDiskFull:         "Free up disk space and try again. Nothing was changed in this session.",
	ErrPermissionDenied: "Check file permissions in your data directory (see 'quotd config path').",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	if errors.Is(err, fs.ErrPermission) {
		return Suggestions[ErrPermissionDenied]
	}
	if errors.Is(err, syscall.ENOSPC) {
		return Suggestions[ErrDiskFull]
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	return ""
}

// FormatError formats an error with its suggestion, if any. System errors
// also name their underlying cause.
func FormatError(err error) string {
	msg := err.Error()
	if se, ok := AsSystemError(err); ok && se.Cause != nil && !strings.Contains(msg, se.Cause.Error()) {
		msg += " (" + se.Cause.Error() + ")"
	}
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
