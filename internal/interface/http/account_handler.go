package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
	"github.com/lucasweiblen/clean-architecture/internal/presentation"
	"github.com/lucasweiblen/clean-architecture/pkg/response"
)

var errAccessDenied = errors.New("access denied")

type AccountHandler struct {
	SignupController presentation.Controller
	LoginController  presentation.Controller
	Repo             repository.AccountRepository
	Logger           *logrus.Logger
}

func NewAccountHandler(signup, login presentation.Controller, repo repository.AccountRepository, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{SignupController: signup, LoginController: login, Repo: repo, Logger: logger}
}

// decodeBody reads the raw JSON body into the map shape the
// presentation controllers validate field by field.
func decodeBody(c *gin.Context) (map[string]any, bool) {
	body := map[string]any{}
	if err := c.ShouldBindJSON(&body); err != nil {
		writeResponse(c, response.BadRequest(errors.New("invalid json body")))
		return nil, false
	}
	return body, true
}

func writeResponse(c *gin.Context, resp response.HTTPResponse) {
	if resp.Body == nil {
		c.Status(resp.StatusCode)
		return
	}
	c.JSON(resp.StatusCode, resp.Body)
}

func (h *AccountHandler) Signup(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		return
	}
	resp := h.SignupController.Handle(c.Request.Context(), presentation.HTTPRequest{Body: body})
	writeResponse(c, resp)
}

func (h *AccountHandler) Login(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		return
	}
	resp := h.LoginController.Handle(c.Request.Context(), presentation.HTTPRequest{Body: body})
	writeResponse(c, resp)
}

// Me returns the authenticated account. The password never leaves the
// handler, hashed or not.
func (h *AccountHandler) Me(c *gin.Context) {
	id := c.GetString("accountID")
	acc, err := h.Repo.LoadByID(c.Request.Context(), id)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("account_id", id).Error("load account failed")
		}
		writeResponse(c, response.ServerError())
		return
	}
	if acc == nil {
		writeResponse(c, response.Unauthorized(errAccessDenied))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    acc.ID,
		"name":  acc.Name,
		"email": acc.Email,
	})
}
