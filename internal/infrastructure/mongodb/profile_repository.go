package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	"github.com/oksasatya/devconnector-api/internal/domain/repository"
)

type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

// Save replaces the whole document owned by p.User.ID, inserting it when absent.
func (r *ProfileRepository) Save(ctx context.Context, p *entity.Profile) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"user._id": p.User.ID}, p, options.Replace().SetUpsert(true))
	return mapErr(err)
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	p := &entity.Profile{}
	if err := r.coll.FindOne(ctx, bson.M{"user._id": userID}).Decode(p); err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []*entity.Profile{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user._id": userID})
	if err != nil {
		return err
	}
	return notFoundIfZero(res.DeletedCount)
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
