package repository

import (
	"context"

	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
)

// SurveyRepository is the persistence boundary for surveys.
type SurveyRepository interface {
	Add(ctx context.Context, input entity.AddSurveyInput) error
	LoadAll(ctx context.Context) ([]entity.Survey, error)
	LoadByID(ctx context.Context, id string) (*entity.Survey, error)
}
