package endpoint

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	baseHttp "net/http"
)

const MaxRequestSize = 1 << 20 // 1MB limit

// ParseRequestBody decodes the JSON body into T. The returned closer must be
// invoked by the caller once the body is no longer needed.
func ParseRequestBody[T any](r *baseHttp.Request) (T, func(), error) {
	var err error
	var request T
	var data []byte

	closer := func() {
		if issue := r.Body.Close(); issue != nil {
			slog.Error("ParseRequestBody: " + issue.Error())
		}
	}

	limitedReader := io.LimitReader(r.Body, MaxRequestSize)
	if data, err = io.ReadAll(limitedReader); err != nil {
		return request, closer, fmt.Errorf("failed to read the given request body: %w", err)
	}

	if len(data) == 0 {
		return request, closer, nil
	}

	if err = json.Unmarshal(data, &request); err != nil {
		return request, closer, fmt.Errorf("failed to unmarshal the given request body: %w", err)
	}

	return request, closer, nil
}
