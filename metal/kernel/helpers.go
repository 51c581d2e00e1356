package kernel

import (
	baseHttp "net/http"

	"github.com/inkpress/database"
	"github.com/inkpress/metal/env"
	"github.com/inkpress/pkg/endpoint"
)

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

func (a *App) CloseDB() {
	if a.db == nil {
		return
	}

	a.db.Close()
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetDB() *database.Connection {
	return a.db
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}

// Handler assembles the outermost HTTP handler: routes, CORS outside
// production, and Sentry request instrumentation when configured.
func (a *App) Handler() baseHttp.Handler {
	return endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          a.GetMux(),
		IsProduction: a.IsProduction(),
		Wrap:         a.sentry.Wrap,
	})
}
