package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wordgame/internal/api/apierr"
	"github.com/mcoot/wordgame/internal/middleware"
)

// Recovery turns a handler panic into a JSON INTERNAL_ERROR response
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, writeInternalError)
}

func writeInternalError(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
