package kernel

import (
	baseHttp "net/http"

	"github.com/inkpress/database"
	"github.com/inkpress/database/repository"
	"github.com/inkpress/handler"
	"github.com/inkpress/metal/env"
	"github.com/inkpress/pkg/endpoint"
	"github.com/inkpress/pkg/media"
	"github.com/inkpress/pkg/middleware"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
	Db       *database.Connection
}

// PublicPipelineFor adapts a read handler with no extra middleware.
func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.MakeApiHandler(
		r.Pipeline.Chain(apiHandler),
	)
}

// PipelineFor throttles the mutating admin routes per client IP.
func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.MakeApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.Throttle.Handle,
		),
	)
}

func (r *Router) Posts() {
	repo := repository.Posts{DB: r.Db}
	abstract := handler.MakePostsHandler(repo)

	r.Mux.HandleFunc("GET /api/blog-posts", r.PublicPipelineFor(abstract.Index))
	r.Mux.HandleFunc("GET /api/blog-posts/{slug}", r.PublicPipelineFor(abstract.Show))
	r.Mux.HandleFunc("GET /api/blog-posts/id/{id}", r.PublicPipelineFor(abstract.ShowById))

	r.Mux.HandleFunc("POST /api/blog-posts", r.PipelineFor(abstract.Store))
	r.Mux.HandleFunc("PUT /api/blog-posts/{id}", r.PipelineFor(abstract.Update))
	r.Mux.HandleFunc("DELETE /api/blog-posts/{id}", r.PipelineFor(abstract.Destroy))
}

func (r *Router) Media() {
	repo := repository.Posts{DB: r.Db}
	uploader := media.MakeUploader(r.Env.Media)
	abstract := handler.MakeMediaHandler(repo, uploader, r.Env.Media.GetTmpDir())

	r.Mux.HandleFunc("POST /api/blog-posts/{id}/cover", r.PipelineFor(abstract.UploadCover))
	r.Mux.HandleFunc("POST /api/blog-posts/{id}/blocks/image", r.PipelineFor(abstract.UploadBlockImage))
}

func (r *Router) Ping() {
	abstract := handler.MakePingHandler()

	r.Mux.HandleFunc("GET /api/ping", r.PublicPipelineFor(abstract.Handle))
}

func (r *Router) KeepAliveDB() {
	abstract := handler.MakeKeepAliveDBHandler(&r.Env.Ping, r.Db)

	r.Mux.HandleFunc("GET /api/ping-db", r.PublicPipelineFor(abstract.Handle))
}

func (r *Router) Metrics() {
	r.Mux.Handle("GET /metrics", handler.NewMetricsHandler())
}
