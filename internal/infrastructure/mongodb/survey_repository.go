package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
)

type SurveyRepository struct {
	collection *mongo.Collection
}

func NewSurveyRepository(db *mongo.Database, collection string) *SurveyRepository {
	return &SurveyRepository{collection: db.Collection(collection)}
}

type dbSurvey struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Question string             `bson:"question"`
	Answers  []dbSurveyAnswer   `bson:"answers"`
	Date     time.Time          `bson:"date"`
}

type dbSurveyAnswer struct {
	Image  string `bson:"image,omitempty"`
	Answer string `bson:"answer"`
}

func surveyFromDB(d dbSurvey) *entity.Survey {
	answers := make([]entity.SurveyAnswer, 0, len(d.Answers))
	for _, a := range d.Answers {
		answers = append(answers, entity.SurveyAnswer{Image: a.Image, Answer: a.Answer})
	}
	return &entity.Survey{
		ID:       d.ID.Hex(),
		Question: d.Question,
		Answers:  answers,
		Date:     d.Date,
	}
}

func (r *SurveyRepository) Add(ctx context.Context, input entity.AddSurveyInput) error {
	answers := make([]dbSurveyAnswer, 0, len(input.Answers))
	for _, a := range input.Answers {
		answers = append(answers, dbSurveyAnswer{Image: a.Image, Answer: a.Answer})
	}
	_, err := r.collection.InsertOne(ctx, &dbSurvey{
		Question: input.Question,
		Answers:  answers,
		Date:     input.Date,
	})
	return err
}

func (r *SurveyRepository) LoadAll(ctx context.Context) ([]entity.Survey, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	surveys := []entity.Survey{}
	for cur.Next(ctx) {
		var d dbSurvey
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		surveys = append(surveys, *surveyFromDB(d))
	}
	return surveys, cur.Err()
}

func (r *SurveyRepository) LoadByID(ctx context.Context, id string) (*entity.Survey, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var d dbSurvey
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return surveyFromDB(d), nil
}

var _ repository.SurveyRepository = (*SurveyRepository)(nil)
