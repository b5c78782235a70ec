// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidResponse = errors.New("invalid response")
)

// HTTPError is returned for any non-2xx answer of the node. It matches
// ErrNotFound when the node answered 404.
type HTTPError struct {
	Code int
	Body string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.Code, e.Body)
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

func (e *HTTPError) retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}

// Message returns the node's error message, or the raw body when the
// body is not a node error.
func (e *HTTPError) Message() string {
	var body apiError
	if err := json.Unmarshal([]byte(e.Body), &body); err != nil || body.Message == "" {
		return e.Body
	}
	if body.ErrorCode != "" {
		return body.ErrorCode + ": " + body.Message
	}
	return body.Message
}
