package kernel

import (
	baseHttp "net/http"
	"time"

	"github.com/inkpress/database"
	"github.com/inkpress/metal/env"
	"github.com/inkpress/pkg/llogs"
	"github.com/inkpress/pkg/middleware"
	"github.com/inkpress/pkg/portal"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	db := MakeDbConnection(env)

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		db:        db,
	}

	router := Router{
		Env: env,
		Db:  db,
		Mux: baseHttp.NewServeMux(),
		Pipeline: middleware.Pipeline{
			Env:      env,
			Throttle: middleware.MakeThrottleMiddleware(time.Minute, 60),
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := a.router

	router.Posts()
	router.Media()
	router.Ping()
	router.KeepAliveDB()
	router.Metrics()
}
