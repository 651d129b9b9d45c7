// Package problem maps application errors to RFC 7807 style problem-detail
// responses with localized text.
package problem

import (
	"errors"
	"net/http"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/userdir/internal/pkg/goerror"
	"github.com/shandysiswandi/userdir/internal/pkg/i18n"
	"github.com/shandysiswandi/userdir/internal/pkg/validator"
)

// violationSeparator joins the per-violation texts into the single detail
// string of the response contract.
const violationSeparator = ";"

// Detail is the uniform error response body: an HTTP status, a localized
// human-readable detail, and a constant type URI identifying the error
// dialect. Kind is carried by status plus detail, never by type.
type Detail struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Type   string `json:"type"`
}

// Mapper converts errors into Detail values. Every mapping is a pure
// function of its inputs.
type Mapper struct {
	catalog *i18n.Catalog
	typeURI string
}

// NewMapper builds a Mapper. typeURI is the configured type for every
// produced Detail, identical across all error responses.
func NewMapper(catalog *i18n.Catalog, typeURI string) *Mapper {
	return &Mapper{catalog: catalog, typeURI: typeURI}
}

// New builds a Detail with already-final text. Used for errors that carry no
// catalog id, such as unmatched routes.
func (m *Mapper) New(status int, detail string) Detail {
	return Detail{Status: status, Detail: detail, Type: m.typeURI}
}

// FromViolations aggregates validation violations into one bad-request
// Detail. Each violation resolves through the catalog under locale, keeping
// its own fallback text on a catalog miss, and the texts are joined with the
// separator into a single string.
func (m *Mapper) FromViolations(locale string, violations validator.Violations) Detail {
	texts := lo.Map(violations, func(v validator.Violation, _ int) string {
		if text, ok := m.catalog.Resolve(locale, v.MessageID); ok {
			return text
		}
		if v.Fallback != "" {
			return v.Fallback
		}
		return v.MessageID
	})

	return Detail{
		Status: http.StatusBadRequest,
		Detail: strings.Join(texts, violationSeparator),
		Type:   m.typeURI,
	}
}

// FromNotFound renders a not-found signal into a 404 Detail, substituting
// the signal's args (the lookup key that failed) into the localized text.
func (m *Mapper) FromNotFound(locale string, signal *goerror.Error) Detail {
	text, _ := m.catalog.Resolve(locale, signal.MessageID(), signal.Args()...)

	return Detail{
		Status: http.StatusNotFound,
		Detail: text,
		Type:   m.typeURI,
	}
}

// FromError dispatches any error produced by the application to the matching
// Detail. Unrecognized errors become a generic 500; a raw fault never
// reaches the caller.
func (m *Mapper) FromError(locale string, err error) Detail {
	var violations validator.Violations
	if errors.As(err, &violations) {
		return m.FromViolations(locale, violations)
	}

	var gerr *goerror.Error
	if errors.As(err, &gerr) {
		switch gerr.Code() {
		case goerror.CodeNotFound:
			return m.FromNotFound(locale, gerr)
		case goerror.CodeInvalidFormat:
			text, _ := m.catalog.Resolve(locale, gerr.MessageID())
			return m.New(gerr.StatusCode(), text)
		}
	}

	return m.internal(locale)
}

func (m *Mapper) internal(locale string) Detail {
	text, ok := m.catalog.Resolve(locale, i18n.MsgInternalError)
	if !ok {
		text = "Internal server error"
	}
	return m.New(http.StatusInternalServerError, text)
}
