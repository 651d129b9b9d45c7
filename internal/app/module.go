package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/userdir/internal/user"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.user.enabled") {
		if err := user.New(user.Dependency{
			Router:     a.router,
			Catalog:    a.catalog,
			Instrument: a.ins,
		}); err != nil {
			slog.Error("failed to init module user", "error", err)
			os.Exit(1)
		}
	}
}
