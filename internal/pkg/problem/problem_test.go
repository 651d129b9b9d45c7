package problem

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shandysiswandi/userdir/internal/pkg/goerror"
	"github.com/shandysiswandi/userdir/internal/pkg/i18n"
	"github.com/shandysiswandi/userdir/internal/pkg/validator"
)

const testTypeURI = "https://example.com/error"

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()

	catalog, err := i18n.New("en", map[string]map[string]string{
		"en": {
			"validation.username.notNull": "Username must not be null",
			"validation.email.invalid":    "Email must be a valid email address",
			"user.not.found":              "User with username '{0}' not found",
			"request.body.invalid":        "Request body is malformed",
			"error.internal":              "Internal server error",
		},
		"de": {
			"validation.username.notNull": "Benutzername darf nicht null sein",
			"user.not.found":              "Benutzer mit Benutzername '{0}' nicht gefunden",
		},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	return NewMapper(catalog, testTypeURI)
}

func TestFromViolationsJoinsWithSeparator(t *testing.T) {
	// Arrange
	m := newTestMapper(t)
	violations := validator.Violations{
		{Field: "username", MessageID: "validation.username.notNull", Fallback: "Username is required"},
		{Field: "email", MessageID: "validation.email.invalid", Fallback: "Email is invalid"},
	}

	// Act
	pd := m.FromViolations("en", violations)

	// Assert
	if pd.Status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", pd.Status)
	}
	if pd.Type != testTypeURI {
		t.Fatalf("expected type %q, got %q", testTypeURI, pd.Type)
	}
	want := "Username must not be null;Email must be a valid email address"
	if pd.Detail != want {
		t.Fatalf("expected detail %q, got %q", want, pd.Detail)
	}
}

func TestFromViolationsSingleHasNoSeparator(t *testing.T) {
	// Arrange
	m := newTestMapper(t)
	violations := validator.Violations{
		{Field: "email", MessageID: "validation.email.invalid", Fallback: "Email is invalid"},
	}

	// Act
	pd := m.FromViolations("en", violations)

	// Assert
	if pd.Detail != "Email must be a valid email address" {
		t.Fatalf("unexpected detail: %q", pd.Detail)
	}
}

func TestFromViolationsCatalogMissUsesFallback(t *testing.T) {
	// Arrange
	m := newTestMapper(t)
	violations := validator.Violations{
		{Field: "username", MessageID: "no.such.id", Fallback: "Username looks wrong"},
	}

	// Act
	pd := m.FromViolations("en", violations)

	// Assert
	if pd.Detail != "Username looks wrong" {
		t.Fatalf("expected fallback text, got %q", pd.Detail)
	}
}

func TestFromNotFoundCarriesLookupKey(t *testing.T) {
	// Arrange
	m := newTestMapper(t)
	var signal *goerror.Error
	if !errors.As(goerror.NewNotFound("user.not.found", "john-doet"), &signal) {
		t.Fatal("expected a goerror signal")
	}

	// Act
	pd := m.FromNotFound("en", signal)

	// Assert
	if pd.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", pd.Status)
	}
	if pd.Detail != "User with username 'john-doet' not found" {
		t.Fatalf("unexpected detail: %q", pd.Detail)
	}
}

func TestFromErrorDispatch(t *testing.T) {
	// Arrange
	m := newTestMapper(t)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "violations",
			err:        validator.Violations{{MessageID: "validation.email.invalid"}},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Email must be a valid email address",
		},
		{
			name:       "not found",
			err:        goerror.NewNotFound("user.not.found", "nobody"),
			wantStatus: http.StatusNotFound,
			wantDetail: "User with username 'nobody' not found",
		},
		{
			name:       "invalid format",
			err:        goerror.NewInvalidFormat("request.body.invalid"),
			wantStatus: http.StatusBadRequest,
			wantDetail: "Request body is malformed",
		},
		{
			name:       "opaque server fault",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal server error",
		},
		{
			name:       "wrapped server fault",
			err:        goerror.NewServer(errors.New("boom")),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal server error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			pd := m.FromError("en", tc.err)

			// Assert
			if pd.Status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, pd.Status)
			}
			if pd.Detail != tc.wantDetail {
				t.Fatalf("expected detail %q, got %q", tc.wantDetail, pd.Detail)
			}
			if pd.Type != testTypeURI {
				t.Fatalf("expected type %q, got %q", testTypeURI, pd.Type)
			}
		})
	}
}

func TestLocaleSwitchKeepsStatusAndType(t *testing.T) {
	// Arrange
	m := newTestMapper(t)
	var signal *goerror.Error
	if !errors.As(goerror.NewNotFound("user.not.found", "john-doet"), &signal) {
		t.Fatal("expected a goerror signal")
	}

	// Act
	en := m.FromNotFound("en", signal)
	de := m.FromNotFound("de", signal)

	// Assert
	if en.Status != de.Status || en.Type != de.Type {
		t.Fatalf("locale must only change detail: en=%+v de=%+v", en, de)
	}
	if de.Detail != "Benutzer mit Benutzername 'john-doet' nicht gefunden" {
		t.Fatalf("unexpected de detail: %q", de.Detail)
	}
	if en.Detail == de.Detail {
		t.Fatal("expected localized details to differ")
	}
}
