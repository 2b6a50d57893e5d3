// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
)

// ErrorResponse is the JSON body of every non-2xx API answer
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Response wraps successful payloads
type Response struct {
	Data   any   `json:"data"`
	Status int   `json:"status"`
	Meta   *Page `json:"_meta,omitempty"`
}

type Page struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

func WriteData(w http.ResponseWriter, status int, data any, page *Page) error {
	return WriteJSON(w, status, Response{Data: data, Status: status, Meta: page})
}

func WriteError(w http.ResponseWriter, status int, err, message string) error {
	return WriteJSON(w, status, ErrorResponse{Error: err, Message: message})
}

// DecodeJSON reads at most limit bytes of body into out, rejecting unknown fields
func DecodeJSON(body io.Reader, limit int64, out any) error {
	dec := json.NewDecoder(io.LimitReader(body, limit))
	dec.DisallowUnknownFields()

	return dec.Decode(out)
}

// PageFromRequest reads the page and size query parameters, zero when absent or invalid
func PageFromRequest(r *http.Request) Page {
	q := r.URL.Query()

	return Page{Page: positiveInt(q.Get("page")), Size: positiveInt(q.Get("size"))}
}

func positiveInt(s string) int64 {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil || i < 0 {
		return 0
	}
	return i
}
