package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a rejection from the FixNow backend. The message is surfaced to
// users verbatim, so it prefers the backend's own wording over the HTTP
// status text.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// errorFromResponse builds an *Error from a non-2xx response body. The
// backend reports failures as {"message": ...} or {"error": ...}.
func errorFromResponse(resp *http.Response) *Error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed: %s", http.StatusText(resp.StatusCode)),
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}
	if payload.Message != "" {
		apiErr.Message = payload.Message
	} else if payload.Err != "" {
		apiErr.Message = payload.Err
	}
	return apiErr
}
