package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lucasweiblen/clean-architecture/internal/application"
	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/pkg/response"
)

type SurveyHandler struct {
	Svc    *application.SurveyService
	Logger *logrus.Logger
}

func NewSurveyHandler(svc *application.SurveyService, logger *logrus.Logger) *SurveyHandler {
	return &SurveyHandler{Svc: svc, Logger: logger}
}

type surveyAnswerPayload struct {
	Image  string `json:"image"`
	Answer string `json:"answer" binding:"required"`
}

type addSurveyRequest struct {
	Question string                `json:"question" binding:"required"`
	Answers  []surveyAnswerPayload `json:"answers" binding:"required,min=1,dive"`
}

func (h *SurveyHandler) AddSurvey(c *gin.Context) {
	var req addSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeResponse(c, response.BadRequest(errors.New("invalid survey payload")))
		return
	}
	answers := make([]entity.SurveyAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, entity.SurveyAnswer{Image: a.Image, Answer: a.Answer})
	}
	input := entity.AddSurveyInput{Question: req.Question, Answers: answers, Date: time.Now().UTC()}
	if err := h.Svc.Add(c.Request.Context(), input); err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("add survey failed")
		}
		writeResponse(c, response.ServerError())
		return
	}
	writeResponse(c, response.NoContent())
}

func (h *SurveyHandler) LoadSurveys(c *gin.Context) {
	surveys, err := h.Svc.LoadAll(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("load surveys failed")
		}
		writeResponse(c, response.ServerError())
		return
	}
	out := make([]gin.H, 0, len(surveys))
	for _, s := range surveys {
		answers := make([]gin.H, 0, len(s.Answers))
		for _, a := range s.Answers {
			answers = append(answers, gin.H{"image": a.Image, "answer": a.Answer})
		}
		out = append(out, gin.H{
			"id":       s.ID,
			"question": s.Question,
			"answers":  answers,
			"date":     s.Date,
		})
	}
	c.JSON(http.StatusOK, out)
}
