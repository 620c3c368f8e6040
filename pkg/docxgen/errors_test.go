package docxgen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "document error with path and cause",
			err:  NewDocumentError("read image", "/tmp/a.png", cause),
			want: "document error during read image of '/tmp/a.png': permission denied",
		},
		{
			name: "document error with path only",
			err:  NewDocumentError("create", "/tmp/out.docx", nil),
			want: "document error during create of '/tmp/out.docx'",
		},
		{
			name: "document error with cause only",
			err:  NewDocumentError("parse table data", "", cause),
			want: "document error during parse table data: permission denied",
		},
		{
			name: "document error bare",
			err:  NewDocumentError("write", "", nil),
			want: "document error during write",
		},
		{
			name: "image error",
			err:  &ImageError{Stage: "decode", Cause: cause},
			want: "image decode failed: permission denied",
		},
		{
			name: "package error with part",
			err:  &PackageError{Part: "word/styles.xml", Cause: cause},
			want: "package error in word/styles.xml: permission denied",
		},
		{
			name: "package error without part",
			err:  &PackageError{Cause: cause},
			want: "package error: permission denied",
		},
		{
			name: "single validation issue",
			err:  &ValidationError{Issues: []ValidationIssue{{Field: "jpeg_quality", Message: "must be between 1 and 100"}}},
			want: "validation error: jpeg_quality - must be between 1 and 100",
		},
		{
			name: "multiple validation issues",
			err: &ValidationError{Issues: []ValidationIssue{
				{Field: "a", Message: "bad"},
				{Field: "b", Message: "worse"},
			}},
			want: "2 validation issues:\n  a: bad\n  b: worse",
		},
		{
			name: "empty validation error",
			err:  &ValidationError{},
			want: "validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	cause := errors.New("cause")
	doc := fmt.Errorf("wrapped: %w", NewDocumentError("read", "x", cause))
	img := fmt.Errorf("wrapped: %w", &ImageError{Stage: "encode", Cause: cause})
	pkg := fmt.Errorf("wrapped: %w", &PackageError{Cause: cause})

	assert.True(t, IsDocumentError(doc))
	assert.False(t, IsDocumentError(img))
	assert.True(t, IsImageError(img))
	assert.False(t, IsImageError(pkg))
	assert.True(t, IsPackageError(pkg))
	assert.False(t, IsPackageError(cause))

	for _, err := range []error{doc, img, pkg} {
		assert.ErrorIs(t, err, cause)
	}
}
