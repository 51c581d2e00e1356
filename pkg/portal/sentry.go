package portal

import (
	baseHttp "net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/inkpress/metal/env"
)

type Sentry struct {
	Handler *sentryhttp.Handler
	Options *sentryhttp.Options
	Env     *env.Environment
}

// Wrap binds a Sentry hub to each request so handlers can report exceptions.
// A nil receiver leaves the handler untouched.
func (s *Sentry) Wrap(next baseHttp.Handler) baseHttp.Handler {
	if s == nil || s.Handler == nil {
		return next
	}

	return s.Handler.Handle(next)
}
