package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
	"github.com/lucasweiblen/clean-architecture/pkg/helpers"
)

const surveysCacheKey = "surveys:all"

// SurveyService fronts the survey repository with a short-lived Redis
// cache on the list path. Cache failures never fail the request.
type SurveyService struct {
	Repo     repository.SurveyRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
	CacheTTL time.Duration
}

func NewSurveyService(repo repository.SurveyRepository, rdb *redis.Client, logger *logrus.Logger, cacheTTL time.Duration) *SurveyService {
	return &SurveyService{Repo: repo, Redis: rdb, Logger: logger, CacheTTL: cacheTTL}
}

func (s *SurveyService) Add(ctx context.Context, input entity.AddSurveyInput) error {
	if input.Date.IsZero() {
		input.Date = time.Now().UTC()
	}
	if err := s.Repo.Add(ctx, input); err != nil {
		return err
	}
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, surveysCacheKey); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("survey cache invalidation failed")
		}
	}
	return nil
}

func (s *SurveyService) LoadAll(ctx context.Context) ([]entity.Survey, error) {
	if s.Redis != nil {
		var cached []entity.Survey
		if hit, err := helpers.RedisGetJSON(ctx, s.Redis, surveysCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}
	surveys, err := s.Repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil && s.CacheTTL > 0 {
		if err := helpers.RedisSetJSON(ctx, s.Redis, surveysCacheKey, surveys, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("survey cache write failed")
		}
	}
	return surveys, nil
}

func (s *SurveyService) LoadByID(ctx context.Context, id string) (*entity.Survey, error) {
	return s.Repo.LoadByID(ctx, id)
}
