package presentation

import (
	"context"

	"github.com/lucasweiblen/clean-architecture/pkg/response"
)

// HTTPRequest is the transport-agnostic request shape controllers
// consume. The HTTP layer fills Body from the decoded JSON payload.
type HTTPRequest struct {
	Body map[string]any
}

// Controller handles one request and always yields an envelope; no
// failure escapes past it.
type Controller interface {
	Handle(ctx context.Context, req HTTPRequest) response.HTTPResponse
}

func bodyString(body map[string]any, key string) string {
	if s, ok := body[key].(string); ok {
		return s
	}
	return ""
}
