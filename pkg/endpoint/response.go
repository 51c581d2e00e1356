package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	baseHttp "net/http"
)

type Response struct {
	writer  baseHttp.ResponseWriter
	request *baseHttp.Request
	headers func(w baseHttp.ResponseWriter)
}

func MakeNoCacheResponse(writer baseHttp.ResponseWriter, request *baseHttp.Request) *Response {
	return &Response{
		writer:  writer,
		request: request,
		headers: func(w baseHttp.ResponseWriter) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Cache-Control", "no-store")
		},
	}
}

func (r *Response) RespondOk(payload any) error {
	r.headers(r.writer)
	r.writer.WriteHeader(baseHttp.StatusOK)

	return json.NewEncoder(r.writer).Encode(payload)
}

func (r *Response) RespondCreated(payload any) error {
	r.headers(r.writer)
	r.writer.WriteHeader(baseHttp.StatusCreated)

	return json.NewEncoder(r.writer).Encode(payload)
}

func InternalError(msg string) *ApiError {
	message := fmt.Sprintf("Internal server error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  baseHttp.StatusInternalServerError,
		Err:     errors.New(message),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(msg, "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  baseHttp.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	message := fmt.Sprintf("Bad request error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  baseHttp.StatusBadRequest,
		Err:     errors.New(message),
	}
}

func LogUnauthorisedError(msg string, err error) *ApiError {
	slog.Error(msg, "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Unauthorised request: %s", msg),
		Status:  baseHttp.StatusUnauthorized,
		Err:     err,
	}
}

func TooManyRequestsError(msg string) *ApiError {
	message := fmt.Sprintf("Too many requests: %s", msg)

	return &ApiError{
		Message: message,
		Status:  baseHttp.StatusTooManyRequests,
		Err:     errors.New(message),
	}
}

func NotFound(msg string) *ApiError {
	message := fmt.Sprintf("Not found error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  baseHttp.StatusNotFound,
		Err:     errors.New(message),
	}
}
