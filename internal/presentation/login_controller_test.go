package presentation

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasweiblen/clean-architecture/internal/application"
	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/validation"
	"github.com/lucasweiblen/clean-architecture/pkg/response"
)

func loginBody() map[string]any {
	return map[string]any{"email": "jane@x.com", "password": "p1"}
}

func makeLoginSut() (*LoginController, *validationStub, *authStub) {
	v := &validationStub{}
	auth := &authStub{token: "any_token"}
	return NewLoginController(v, auth, nil), v, auth
}

func TestLoginReturns400OnValidationError(t *testing.T) {
	sut, v, auth := makeLoginSut()
	v.err = &validation.MissingParamError{Param: "email"}

	resp := sut.Handle(context.Background(), HTTPRequest{Body: loginBody()})

	assert.Equal(t, response.BadRequest(v.err), resp)
	assert.Equal(t, 0, auth.calls)
}

func TestLoginReturns401OnInvalidCredentials(t *testing.T) {
	sut, _, auth := makeLoginSut()
	auth.token = ""
	auth.err = application.ErrInvalidCredentials

	resp := sut.Handle(context.Background(), HTTPRequest{Body: loginBody()})

	assert.Equal(t, response.Unauthorized(application.ErrInvalidCredentials), resp)
}

func TestLoginReturns500OnInfrastructureFailure(t *testing.T) {
	sut, _, auth := makeLoginSut()
	auth.token = ""
	auth.err = errors.New("store unavailable")

	resp := sut.Handle(context.Background(), HTTPRequest{Body: loginBody()})

	assert.Equal(t, response.ServerError(), resp)
}

func TestLoginReturns200WithAccessToken(t *testing.T) {
	sut, _, auth := makeLoginSut()

	resp := sut.Handle(context.Background(), HTTPRequest{Body: loginBody()})

	require.Equal(t, 1, auth.calls)
	assert.Equal(t, entity.AuthenticationInput{Email: "jane@x.com", Password: "p1"}, auth.got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"accessToken": "any_token"}, resp.Body)
}
