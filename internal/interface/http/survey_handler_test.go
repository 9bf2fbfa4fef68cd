package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasweiblen/clean-architecture/internal/application"
	"github.com/lucasweiblen/clean-architecture/internal/infrastructure/crypto"
	"github.com/lucasweiblen/clean-architecture/internal/infrastructure/memory"
	"github.com/lucasweiblen/clean-architecture/internal/interface/middleware"
	"github.com/lucasweiblen/clean-architecture/internal/presentation"
	"github.com/lucasweiblen/clean-architecture/internal/validation"
	"github.com/lucasweiblen/clean-architecture/pkg/helpers"
)

func newSurveyTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)

	accounts := memory.NewAccountRepository()
	bcryptAdapter := helpers.NewBcryptAdapter(4)
	tokenAdapter := crypto.NewJWTAdapter("test-secret", 0)

	addAccount := application.NewAddAccountService(accounts, bcryptAdapter)
	auth := application.NewAuthService(accounts, bcryptAdapter, tokenAdapter)
	signup := presentation.NewSignupController(validation.ForSignup(), addAccount, auth, nil)
	login := presentation.NewLoginController(validation.ForLogin(), auth, nil)
	accountHandler := NewAccountHandler(signup, login, accounts, nil)

	surveySvc := application.NewSurveyService(memory.NewSurveyRepository(), nil, nil, time.Minute)
	surveyHandler := NewSurveyHandler(surveySvc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/signup", accountHandler.Signup)
	protected := api.Group("/")
	protected.Use(middleware.Auth(tokenAdapter, accounts))
	protected.POST("/surveys", surveyHandler.AddSurvey)
	protected.GET("/surveys", surveyHandler.LoadSurveys)
	return r
}

func TestSurveyRoutesRequireAuth(t *testing.T) {
	r := newSurveyTestServer()

	w, body := doJSON(t, r, http.MethodGet, "/api/surveys", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "access denied", body["error"])

	w, _ = doJSON(t, r, http.MethodPost, "/api/surveys", `{"question":"q","answers":[{"answer":"yes"}]}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSurveyAddAndList(t *testing.T) {
	r := newSurveyTestServer()

	w, body := doJSON(t, r, http.MethodPost, "/api/signup", signupJSON, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := body["accessToken"].(string)
	authHeader := map[string]string{"x-access-token": token}

	w, _ = doJSON(t, r, http.MethodPost, "/api/surveys", `{"question":"favorite color?","answers":[{"answer":"red"},{"answer":"blue","image":"http://img"}]}`, authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/surveys", `{"question":"","answers":[]}`, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req, err := http.NewRequest(http.MethodGet, "/api/surveys", nil)
	require.NoError(t, err)
	req.Header.Set("x-access-token", token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "favorite color?")
	assert.Contains(t, w2.Body.String(), `"id"`)
}
