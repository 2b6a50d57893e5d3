// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		err      string
		message  string
		wantBody string
	}{
		{
			name:     "without message",
			status:   http.StatusForbidden,
			err:      "Village is not accessible",
			wantBody: `{"error":"Village is not accessible"}`,
		},
		{
			name:     "with message",
			status:   http.StatusServiceUnavailable,
			err:      "Village is under maintenance",
			message:  "Back soon",
			wantBody: `{"error":"Village is under maintenance","message":"Back soon"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			if err := WriteError(w, tt.status, tt.err, tt.message); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}

			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected json content type, got %q", ct)
			}

			if got := strings.TrimSpace(w.Body.String()); got != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, got)
			}
		})
	}
}

func TestWriteData(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteData(w, http.StatusOK, []string{"a"}, &Page{Page: 1, Size: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"data":["a"],"status":200,"_meta":{"page":1,"size":10}}`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("expected body %s, got %s", want, got)
	}
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}

	if err := DecodeJSON(strings.NewReader(`{"name":"desa"}`), 1024, &out); err != nil || out.Name != "desa" {
		t.Fatalf("unexpected result %+v, %v", out, err)
	}

	if err := DecodeJSON(strings.NewReader(`{"unknown":1}`), 1024, &out); err == nil {
		t.Error("expected unknown fields to be rejected")
	}

	if err := DecodeJSON(strings.NewReader(`{"name":"a very long name"}`), 8, &out); err == nil {
		t.Error("expected truncated body to fail")
	}
}

func TestPageFromRequest(t *testing.T) {
	tests := []struct {
		query string
		want  Page
	}{
		{query: "", want: Page{}},
		{query: "page=2&size=50", want: Page{Page: 2, Size: 50}},
		{query: "page=-1&size=abc", want: Page{}},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/villages?"+tt.query, nil)
		if got := PageFromRequest(r); got != tt.want {
			t.Errorf("PageFromRequest(%q) = %+v, want %+v", tt.query, got, tt.want)
		}
	}
}
