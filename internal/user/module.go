// Package user is the user directory module: a demo CRUD surface over an
// in-memory collection, with declarative validation and localized error
// messages.
package user

import (
	"errors"

	"github.com/shandysiswandi/userdir/internal/pkg/i18n"
	"github.com/shandysiswandi/userdir/internal/pkg/instrument"
	"github.com/shandysiswandi/userdir/internal/pkg/router"
	"github.com/shandysiswandi/userdir/internal/user/inbound"
	"github.com/shandysiswandi/userdir/internal/user/outbound/memstore"
	"github.com/shandysiswandi/userdir/internal/user/usecase"
)

// Dependency carries everything the module needs from the application.
type Dependency struct {
	Router     *router.Router
	Catalog    *i18n.Catalog
	Instrument instrument.Instrumentation
}

// New wires the module and registers its HTTP endpoints.
func New(dep Dependency) error {
	if dep.Router == nil || dep.Catalog == nil || dep.Instrument == nil {
		return errors.New("user: missing module dependency")
	}

	store := memstore.NewStore(dep.Instrument)

	uc, err := usecase.New(usecase.Dependency{
		Store:      store,
		Catalog:    dep.Catalog,
		Instrument: dep.Instrument,
	})
	if err != nil {
		return err
	}

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
