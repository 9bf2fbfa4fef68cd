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

var ErrEmailInUse = errors.New("email already in use")

// SignupController runs the registration pipeline: validation, account
// creation, then token issuance for the fresh account.
type SignupController struct {
	Validation validation.Validator
	AddAccount application.AddAccount
	Auth       application.Authentication
	Logger     *logrus.Logger
}

func NewSignupController(v validation.Validator, add application.AddAccount, auth application.Authentication, logger *logrus.Logger) *SignupController {
	return &SignupController{Validation: v, AddAccount: add, Auth: auth, Logger: logger}
}

func (c *SignupController) Handle(ctx context.Context, req HTTPRequest) response.HTTPResponse {
	if err := c.Validation.Validate(req.Body); err != nil {
		return response.BadRequest(err)
	}

	input := entity.AddAccountInput{
		Name:     bodyString(req.Body, "name"),
		Email:    bodyString(req.Body, "email"),
		Password: bodyString(req.Body, "password"),
	}
	acc, err := c.AddAccount.Add(ctx, input)
	if err != nil {
		c.logError("add account failed", err)
		return response.ServerError()
	}
	if acc == nil {
		return response.Forbidden(ErrEmailInUse)
	}

	token, err := c.Auth.Auth(ctx, entity.AuthenticationInput{
		Email:    input.Email,
		Password: bodyString(req.Body, "password"),
	})
	if err != nil {
		// Authentication right after a successful signup should not
		// reject; every failure here maps to 500, invalid credentials
		// included. See DESIGN.md before changing this to a 401.
		c.logError("post-signup authentication failed", err)
		return response.ServerError()
	}

	return response.OK(map[string]string{"accessToken": token})
}

func (c *SignupController) logError(msg string, err error) {
	if c.Logger != nil {
		c.Logger.WithError(err).Error(msg)
	}
}

var _ Controller = (*SignupController)(nil)
