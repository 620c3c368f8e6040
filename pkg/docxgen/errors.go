package docxgen

import (
	"errors"
	"fmt"
	"strings"
)

// DocumentError represents an I/O failure while reading input or writing the package
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// ImageError reports a failed compression stage (decode, resize, encode).
// It is recoverable: the original bytes are embedded instead.
type ImageError struct {
	Stage string
	Cause error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("image %s failed: %v", e.Stage, e.Cause)
}

func (e *ImageError) Unwrap() error {
	return e.Cause
}

// PackageError reports a serializer failure while building a package part
type PackageError struct {
	Part  string
	Cause error
}

func (e *PackageError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("package error in %s: %v", e.Part, e.Cause)
	}
	return fmt.Sprintf("package error: %v", e.Cause)
}

func (e *PackageError) Unwrap() error {
	return e.Cause
}

// ValidationIssue represents a single validation problem
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError represents multiple validation issues
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}

	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d validation issues:", len(e.Issues)))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

func (e *ValidationError) add(field, message string) {
	e.Issues = append(e.Issues, ValidationIssue{Field: field, Message: message})
}

// IsDocumentError reports whether err wraps a *DocumentError.
func IsDocumentError(err error) bool {
	var target *DocumentError
	return errors.As(err, &target)
}

// IsImageError reports whether err wraps an *ImageError.
func IsImageError(err error) bool {
	var target *ImageError
	return errors.As(err, &target)
}

// IsPackageError reports whether err wraps a *PackageError.
func IsPackageError(err error) bool {
	var target *PackageError
	return errors.As(err, &target)
}
