// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "s3cret" {
		t.Fatal("password stored in clear")
	}

	if !CheckPassword(hash, "s3cret") {
		t.Error("expected password to match")
	}

	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to be rejected")
	}

	if CheckPassword("", "s3cret") || CheckPassword(hash, "") {
		t.Error("expected empty inputs to be rejected")
	}

	if _, err := HashPassword(""); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}
}
