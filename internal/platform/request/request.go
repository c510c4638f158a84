// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil extracts path parameters and JSON bodies from HTTP requests.

It hides the router's parameter API from handlers and turns malformed input
into VALIDATION_ERROR responses instead of 500s.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/authordesk/internal/platform/apperr"
	"github.com/taibuivan/authordesk/internal/platform/validate"
)

// maxBodyBytes caps decoded request bodies.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into target.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target interface{}) error {
	body := http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Int64Param parses a named URL parameter as a base-10 int64.

Returns:
  - error: a VALIDATION_ERROR naming the parameter if it is not an integer
*/
func Int64Param(request *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(Param(request, name), 10, 64)
	if err != nil {
		return 0, apperr.ValidationError("Invalid path parameter", apperr.FieldError{
			Field:   name,
			Message: "Must be an integer",
		})
	}
	return value, nil
}
