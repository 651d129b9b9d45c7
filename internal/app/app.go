package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/userdir/internal/pkg/config"
	"github.com/shandysiswandi/userdir/internal/pkg/i18n"
	"github.com/shandysiswandi/userdir/internal/pkg/instrument"
	"github.com/shandysiswandi/userdir/internal/pkg/problem"
	"github.com/shandysiswandi/userdir/internal/pkg/router"
	"github.com/shandysiswandi/userdir/internal/pkg/uid"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	uuid    uid.StringID
	catalog *i18n.Catalog
	problem *problem.Mapper

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initCatalog()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
