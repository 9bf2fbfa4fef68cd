package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/lucasweiblen/clean-architecture/internal/application"
	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
	handlers "github.com/lucasweiblen/clean-architecture/internal/interface/http"
	"github.com/lucasweiblen/clean-architecture/internal/interface/middleware"
)

// SurveyModule wires the survey routes. Both require authentication.
type SurveyModule struct {
	Handler   *handlers.SurveyHandler
	Decrypter application.Decrypter
	Repo      repository.AccountRepository
}

func NewSurveyModule(h *handlers.SurveyHandler, d application.Decrypter, repo repository.AccountRepository) *SurveyModule {
	return &SurveyModule{Handler: h, Decrypter: d, Repo: repo}
}

func (m *SurveyModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Decrypter, m.Repo))
	{
		auth.POST("/surveys", m.Handler.AddSurvey)
		auth.GET("/surveys", m.Handler.LoadSurveys)
	}
}
