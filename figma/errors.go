/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the Figma adapter.
var (
	// ErrMissingFileKey indicates a request without a file key.
	ErrMissingFileKey = errors.New("figma file key is required")

	// ErrMissingToken indicates a client without a personal access token.
	ErrMissingToken = errors.New("figma access token is required")

	// ErrInvalidResponse indicates a response body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid figma response")
)

// APIError is a non-200 response from the Figma API.
type APIError struct {
	Status  int
	Message string
	URL     string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("figma API %s: %d %s", e.URL, e.Status, msg)
}

// newAPIError reads the message out of either error body shape Figma uses:
// {"status": 403, "err": "..."} or {"error": true, "message": "..."}.
func newAPIError(url string, status int, body []byte) *APIError {
	var payload struct {
		Err     string `json:"err"`
		Message string `json:"message"`
	}
	apiErr := &APIError{Status: status, URL: url}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Message = payload.Err
		if apiErr.Message == "" {
			apiErr.Message = payload.Message
		}
	}
	return apiErr
}
