package presentation

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/lucasweiblen/clean-architecture/internal/application"
	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/validation"
	"github.com/lucasweiblen/clean-architecture/pkg/response"
)

// LoginController authenticates existing accounts. Unlike signup, a
// credential rejection here is an expected outcome and maps to 401.
type LoginController struct {
	Validation validation.Validator
	Auth       application.Authentication
	Logger     *logrus.Logger
}

func NewLoginController(v validation.Validator, auth application.Authentication, logger *logrus.Logger) *LoginController {
	return &LoginController{Validation: v, Auth: auth, Logger: logger}
}

func (c *LoginController) Handle(ctx context.Context, req HTTPRequest) response.HTTPResponse {
	if err := c.Validation.Validate(req.Body); err != nil {
		return response.BadRequest(err)
	}

	token, err := c.Auth.Auth(ctx, entity.AuthenticationInput{
		Email:    bodyString(req.Body, "email"),
		Password: bodyString(req.Body, "password"),
	})
	if errors.Is(err, application.ErrInvalidCredentials) {
		return response.Unauthorized(err)
	}
	if err != nil {
		if c.Logger != nil {
			c.Logger.WithError(err).Error("authentication failed")
		}
		return response.ServerError()
	}

	return response.OK(map[string]string{"accessToken": token})
}

var _ Controller = (*LoginController)(nil)
