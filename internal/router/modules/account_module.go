package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucasweiblen/clean-architecture/internal/application"
	"github.com/lucasweiblen/clean-architecture/internal/container"
	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
	handlers "github.com/lucasweiblen/clean-architecture/internal/interface/http"
	"github.com/lucasweiblen/clean-architecture/internal/interface/middleware"
)

// AccountModule wires the registration and authentication routes.
// Public: POST /api/signup, POST /api/login
// Protected: GET /api/me
type AccountModule struct {
	Handler   *handlers.AccountHandler
	Decrypter application.Decrypter
	Repo      repository.AccountRepository
}

func NewAccountModule(h *handlers.AccountHandler, d application.Decrypter, repo repository.AccountRepository) *AccountModule {
	return &AccountModule{Handler: h, Decrypter: d, Repo: repo}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Decrypter, m.Repo))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
