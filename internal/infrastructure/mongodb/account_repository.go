package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/domain/repository"
)

type AccountRepository struct {
	collection *mongo.Collection
}

func NewAccountRepository(db *mongo.Database, collection string) *AccountRepository {
	return &AccountRepository{collection: db.Collection(collection)}
}

// dbAccount is the storage shape. It never crosses the repository
// boundary: accountFromDB renames _id to the public ID and drops the
// internal field.
type dbAccount struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

func accountFromDB(d dbAccount) *entity.Account {
	return &entity.Account{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Email:    d.Email,
		Password: d.Password,
	}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var d dbAccount
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return accountFromDB(d), nil
}

func (r *AccountRepository) Add(ctx context.Context, input entity.AddAccountInput) (*entity.Account, error) {
	d := dbAccount{Name: input.Name, Email: input.Email, Password: input.Password}
	res, err := r.collection.InsertOne(ctx, &d)
	if err != nil {
		return nil, err
	}
	d.ID = res.InsertedID.(primitive.ObjectID)
	return accountFromDB(d), nil
}

func (r *AccountRepository) LoadAll(ctx context.Context) ([]entity.Account, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	accounts := []entity.Account{}
	for cur.Next(ctx) {
		var d dbAccount
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		accounts = append(accounts, *accountFromDB(d))
	}
	return accounts, cur.Err()
}

func (r *AccountRepository) LoadByID(ctx context.Context, id string) (*entity.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not a storage identifier, so no account can match.
		return nil, nil
	}
	var d dbAccount
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return accountFromDB(d), nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
