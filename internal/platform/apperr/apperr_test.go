// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/authordesk/internal/platform/apperr"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		wantCode   string
		wantStatus int
		wantClient bool
	}{
		{"not_found", apperr.NotFound("Author"), apperr.CodeNotFound, http.StatusNotFound, true},
		{"unauthorized", apperr.Unauthorized("no token"), apperr.CodeUnauthorized, http.StatusUnauthorized, true},
		{"forbidden", apperr.Forbidden("nope"), apperr.CodeForbidden, http.StatusForbidden, true},
		{"validation", apperr.ValidationError("bad"), apperr.CodeValidation, http.StatusBadRequest, true},
		{"precondition", apperr.Precondition("idexists", "has id"), "idexists", http.StatusBadRequest, true},
		{"internal", apperr.Internal(errors.New("boom")), apperr.CodeInternal, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.wantClient, tt.err.IsClientError())
		})
	}

	assert.Equal(t, "Author not found", apperr.NotFound("Author").Message)
}

func TestAs_TraversesWrapping(t *testing.T) {
	base := apperr.NotFound("Author")
	wrapped := fmt.Errorf("lookup: %w", base)

	assert.Same(t, base, apperr.As(wrapped))
	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.Nil(t, apperr.As(nil))
}

func TestInternal_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.Internal(cause)

	require.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Message, "connection reset")
}

func TestValidationError_Details(t *testing.T) {
	err := apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "name", Message: "This field is required"},
	)

	require.Len(t, err.Details, 1)
	assert.Equal(t, "name", err.Details[0].Field)
}
