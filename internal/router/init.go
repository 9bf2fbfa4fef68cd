package router

import (
	"github.com/lucasweiblen/clean-architecture/internal/application"
	"github.com/lucasweiblen/clean-architecture/internal/container"
	"github.com/lucasweiblen/clean-architecture/internal/infrastructure/mongodb"
	handlers "github.com/lucasweiblen/clean-architecture/internal/interface/http"
	"github.com/lucasweiblen/clean-architecture/internal/presentation"
	"github.com/lucasweiblen/clean-architecture/internal/router/modules"
	"github.com/lucasweiblen/clean-architecture/internal/validation"
	"github.com/lucasweiblen/clean-architecture/pkg/helpers"
)

// InitModules builds every feature module from the container singletons
// and registers it. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	tokenAdapter := container.GetTokenAdapter()

	accountRepo := mongodb.NewAccountRepository(container.GetMongo(), cfg.AccountsCollection)
	bcryptAdapter := helpers.NewBcryptAdapter(cfg.BcryptCost)

	addAccount := application.NewAddAccountService(accountRepo, bcryptAdapter)
	auth := application.NewAuthService(accountRepo, bcryptAdapter, tokenAdapter)

	signup := presentation.NewSignupController(validation.ForSignup(), addAccount, auth, logger)
	login := presentation.NewLoginController(validation.ForLogin(), auth, logger)
	accountHandler := handlers.NewAccountHandler(signup, login, accountRepo, logger)
	r.Add(modules.NewAccountModule(accountHandler, tokenAdapter, accountRepo))

	surveyRepo := mongodb.NewSurveyRepository(container.GetMongo(), cfg.SurveysCollection)
	surveySvc := application.NewSurveyService(surveyRepo, container.GetRedis(), logger, cfg.SurveyCacheTTL)
	surveyHandler := handlers.NewSurveyHandler(surveySvc, logger)
	r.Add(modules.NewSurveyModule(surveyHandler, tokenAdapter, accountRepo))
}
