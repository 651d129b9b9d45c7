package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewNotFound(t *testing.T) {
	// Act
	err := NewNotFound("user.not.found", "john-doet")

	// Assert
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Code() != CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", gerr.Code())
	}
	if gerr.Type() != TypeBusiness {
		t.Fatalf("expected TypeBusiness, got %v", gerr.Type())
	}
	if gerr.MessageID() != "user.not.found" {
		t.Fatalf("unexpected message id: %q", gerr.MessageID())
	}
	if len(gerr.Args()) != 1 || gerr.Args()[0] != "john-doet" {
		t.Fatalf("unexpected args: %v", gerr.Args())
	}
	if gerr.StatusCode() != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", gerr.StatusCode())
	}
}

func TestNewServerWrapsCause(t *testing.T) {
	// Arrange
	cause := errors.New("connection refused")

	// Act
	err := NewServer(cause)

	// Assert
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", gerr.StatusCode())
	}
	if gerr.Error() != "connection refused" {
		t.Fatalf("unexpected error text: %q", gerr.Error())
	}
}

func TestNewInvalidFormat(t *testing.T) {
	// Act
	err := NewInvalidFormat("request.body.invalid")

	// Assert
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.StatusCode() != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", gerr.StatusCode())
	}
	if gerr.Error() != "request.body.invalid" {
		t.Fatalf("unexpected error text: %q", gerr.Error())
	}
}
