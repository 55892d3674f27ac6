package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ErrorDescription struct {
	ErrorFieldPath string
	ErrorTag       string
}

// AssertValidateError fails t unless err holds a validation error for the expected field path and tag.
func AssertValidateError(t *testing.T, err error, expectedError ErrorDescription) {
	t.Helper()
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		t.Fatalf("expected validator.ValidationErrors, got %T: %v", err, err)
	}
	for _, e := range validationErrors {
		if e.Namespace() == expectedError.ErrorFieldPath && e.Tag() == expectedError.ErrorTag {
			return
		}
	}
	assert.Failf(t, "wanted validation error not found", "expected '%v' to contain an error for path=%s and tag=%s", validationErrors, expectedError.ErrorFieldPath, expectedError.ErrorTag)
}

// WriteFile writes content under a fresh temp dir and returns the file path.
func WriteFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
