package main

import (
	"log/slog"
	baseHttp "net/http"
	"time"

	_ "github.com/lib/pq"

	"github.com/inkpress/metal/kernel"
	"github.com/inkpress/pkg/endpoint"
	"github.com/inkpress/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.MakeValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("bootstrapping error > " + err.Error())
	}

	if app, err = kernel.MakeApp(secrets, validate); err != nil {
		panic("bootstrapping error > " + err.Error())
	}
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()

	app.Boot()

	if err := app.GetDB().Ping(); err != nil {
		slog.Error("database is unreachable", "error", err)
	}

	addr := app.GetEnv().Network.GetHostURL()

	server := &baseHttp.Server{
		Addr:              addr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("server stopped with error", "error", err)
		panic("Error running server: " + err.Error())
	}
}
