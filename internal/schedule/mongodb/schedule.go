package mongodb

import (
	"context"
	"errors"

	hrmongo "github.com/frahmantamala/hr-management/internal/mongodb"
	"github.com/frahmantamala/hr-management/internal/schedule"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ScheduleRepository struct {
	coll *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) schedule.RepositoryAPI {
	return &ScheduleRepository{coll: db.Collection(hrmongo.CollectionSchedule)}
}

func (r *ScheduleRepository) List(ctx context.Context) ([]schedule.Schedule, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, err
	}
	var out []schedule.Schedule
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ScheduleRepository) Get(ctx context.Context, employeeID string) (*schedule.Schedule, error) {
	var sc schedule.Schedule
	err := r.coll.FindOne(ctx, bson.M{"id_employee": employeeID}).Decode(&sc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (r *ScheduleRepository) Insert(ctx context.Context, sc schedule.Schedule) (string, error) {
	res, err := r.coll.InsertOne(ctx, sc)
	if err != nil {
		return "", err
	}
	return hrmongo.IDString(res.InsertedID), nil
}

func (r *ScheduleRepository) Update(ctx context.Context, employeeID string, fields map[string]interface{}) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id_employee": employeeID}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, employeeID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id_employee": employeeID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *ScheduleRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
