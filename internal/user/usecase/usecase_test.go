package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/userdir/internal/pkg/goerror"
	"github.com/shandysiswandi/userdir/internal/pkg/i18n"
	"github.com/shandysiswandi/userdir/internal/pkg/instrument"
	"github.com/shandysiswandi/userdir/internal/pkg/validator"
	"github.com/shandysiswandi/userdir/internal/user/entity"
	"github.com/shandysiswandi/userdir/internal/user/outbound/memstore"
)

func testCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()

	catalog, err := i18n.New("en", map[string]map[string]string{
		"en": {
			"user.not.found":     "User with username '{0}' not found",
			"user.not.found.log": "User lookup failed for username '{0}'",
		},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return catalog
}

func testUsecase(t *testing.T) *Usecase {
	t.Helper()

	uc, err := New(Dependency{
		Store:      memstore.NewStore(instrument.NewNoop()),
		Catalog:    testCatalog(t),
		Instrument: instrument.NewNoop(),
	})
	if err != nil {
		t.Fatalf("failed to build usecase: %v", err)
	}
	return uc
}

func TestUserList(t *testing.T) {
	// Arrange
	uc := testUsecase(t)

	// Act
	out, err := uc.UserList(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(out.Users))
	}
}

func TestUserDetailFound(t *testing.T) {
	// Arrange
	uc := testUsecase(t)

	// Act
	out, err := uc.UserDetail(context.Background(), UserDetailInput{Username: "john-doe"})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.Email != "john@test.com" {
		t.Fatalf("expected john@test.com, got %q", out.User.Email)
	}
}

func TestUserDetailNotFound(t *testing.T) {
	// Arrange
	uc := testUsecase(t)

	// Act
	_, err := uc.UserDetail(context.Background(), UserDetailInput{Username: "john-doet"})

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected goerror, got %v", err)
	}
	if gerr.Code() != goerror.CodeNotFound {
		t.Fatalf("expected not-found code, got %v", gerr.Code())
	}
	if gerr.MessageID() != i18n.MsgUserNotFound {
		t.Fatalf("unexpected message id: %q", gerr.MessageID())
	}
	if len(gerr.Args()) != 1 || gerr.Args()[0] != "john-doet" {
		t.Fatalf("expected lookup key in args, got %v", gerr.Args())
	}
}

func TestUserCreateValid(t *testing.T) {
	// Arrange
	uc := testUsecase(t)

	// Act
	out, err := uc.UserCreate(context.Background(), UserCreateInput{
		Username: "alice",
		Email:    "alice@test.com",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := entity.User{Username: "alice", Email: "alice@test.com"}
	if out.User != want {
		t.Fatalf("expected %+v, got %+v", want, out.User)
	}
}

func TestUserCreateInvalid(t *testing.T) {
	// Arrange
	uc := testUsecase(t)

	// Act
	_, err := uc.UserCreate(context.Background(), UserCreateInput{Username: "", Email: "your.com"})

	// Assert
	var violations validator.Violations
	if !errors.As(err, &violations) {
		t.Fatalf("expected violations, got %v", err)
	}
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %v", violations)
	}
	if violations[0].MessageID != i18n.MsgValidationUsernameNotNull {
		t.Fatalf("unexpected first violation: %+v", violations[0])
	}
	if violations[1].MessageID != i18n.MsgValidationEmailInvalid {
		t.Fatalf("unexpected second violation: %+v", violations[1])
	}
}
