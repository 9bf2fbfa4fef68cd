package response

import "net/http"

// HTTPResponse is the transport-agnostic envelope controllers return.
// The HTTP layer serializes Body as-is under the given status code.
type HTTPResponse struct {
	StatusCode int
	Body       any
}

type errorBody struct {
	Error string `json:"error"`
}

func OK(body any) HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusOK, Body: body}
}

func NoContent() HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusNoContent}
}

func BadRequest(err error) HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusBadRequest, Body: errorBody{Error: err.Error()}}
}

func Unauthorized(err error) HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusUnauthorized, Body: errorBody{Error: err.Error()}}
}

func Forbidden(err error) HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusForbidden, Body: errorBody{Error: err.Error()}}
}

// ServerError deliberately discards the original error: infrastructure
// failures are logged upstream, never echoed to the caller.
func ServerError() HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusInternalServerError, Body: errorBody{Error: "internal server error"}}
}
