package router

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/shandysiswandi/userdir/internal/pkg/problem"
	"github.com/shandysiswandi/userdir/internal/pkg/stacktrace"
)

func middlewareRecoverer(pd *problem.Mapper) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					//nolint:err113,errorlint // this must compare directly
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}

					paths := stacktrace.InternalPaths(debug.Stack())
					if len(paths) == 0 {
						slog.ErrorContext(r.Context(), "panic on the server trace debug", "because", rvr, "stack", string(debug.Stack()))
					} else {
						slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", paths)
					}

					writeJSON(w, pd.New(http.StatusInternalServerError, "Internal server error"), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
