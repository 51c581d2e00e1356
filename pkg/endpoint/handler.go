package endpoint

import (
	"encoding/json"
	"log/slog"
	baseHttp "net/http"

	"github.com/getsentry/sentry-go"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

type ApiError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    map[string]any
	Err     error
}

func (e *ApiError) Error() string {
	if e == nil {
		return "Internal Server Error"
	}

	return e.Message
}

func (e *ApiError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

type ApiHandler func(baseHttp.ResponseWriter, *baseHttp.Request) *ApiError

type Middleware func(ApiHandler) ApiHandler

// MakeApiHandler adapts an ApiHandler to a plain http.HandlerFunc, rendering
// the JSON error envelope. Expected outcomes (4xx) are reported to the caller
// only; infrastructure failures (5xx) additionally reach Sentry when a hub is
// bound to the request.
func MakeApiHandler(fn ApiHandler) baseHttp.HandlerFunc {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		if err.Status >= baseHttp.StatusInternalServerError {
			slog.Error("api error", "message", err.Message, "status", err.Status, "cause", err.Err)

			if hub := sentry.GetHubFromContext(r.Context()); hub != nil && err.Err != nil {
				hub.CaptureException(err.Err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(err.Status)

		resp := ErrorResponse{
			Error:  err.Message,
			Status: err.Status,
		}

		if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
			slog.Error("could not encode error response", "error", encodeErr)
		}
	}
}
