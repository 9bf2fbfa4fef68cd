package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
)

type SurveyRepository struct {
	mu      sync.RWMutex
	surveys map[string]entity.Survey
}

func NewSurveyRepository() *SurveyRepository {
	return &SurveyRepository{surveys: map[string]entity.Survey{}}
}

func (r *SurveyRepository) Add(_ context.Context, input entity.AddSurveyInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := entity.Survey{
		ID:       uuid.NewString(),
		Question: input.Question,
		Answers:  input.Answers,
		Date:     input.Date,
	}
	r.surveys[s.ID] = s
	return nil
}

func (r *SurveyRepository) LoadAll(_ context.Context) ([]entity.Survey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Survey, 0, len(r.surveys))
	for _, s := range r.surveys {
		all = append(all, s)
	}
	return all, nil
}

func (r *SurveyRepository) LoadByID(_ context.Context, id string) (*entity.Survey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.surveys[id]; ok {
		return &s, nil
	}
	return nil, nil
}

var _ repository.SurveyRepository = (*SurveyRepository)(nil)
