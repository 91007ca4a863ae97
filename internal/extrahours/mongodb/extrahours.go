package mongodb

import (
	"context"
	"errors"

	"github.com/frahmantamala/hr-management/internal/extrahours"
	hrmongo "github.com/frahmantamala/hr-management/internal/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ExtraHoursRepository struct {
	coll *mongo.Collection
}

func NewExtraHoursRepository(db *mongo.Database) extrahours.RepositoryAPI {
	return &ExtraHoursRepository{coll: db.Collection(hrmongo.CollectionExtraHours)}
}

func (r *ExtraHoursRepository) find(ctx context.Context, filter bson.M) ([]extrahours.Entry, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 0}).SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var out []extrahours.Entry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ExtraHoursRepository) List(ctx context.Context) ([]extrahours.Entry, error) {
	return r.find(ctx, bson.M{})
}

func (r *ExtraHoursRepository) ListByDate(ctx context.Context, date string) ([]extrahours.Entry, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *ExtraHoursRepository) ListByEmployee(ctx context.Context, employeeID string) ([]extrahours.Entry, error) {
	return r.find(ctx, bson.M{"id_employee": employeeID})
}

func (r *ExtraHoursRepository) Get(ctx context.Context, employeeID, date string) (*extrahours.Entry, error) {
	var e extrahours.Entry
	err := r.coll.FindOne(ctx, bson.M{"id_employee": employeeID, "date": date}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExtraHoursRepository) Insert(ctx context.Context, e extrahours.Entry) (string, error) {
	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return "", err
	}
	return hrmongo.IDString(res.InsertedID), nil
}

func (r *ExtraHoursRepository) Update(ctx context.Context, employeeID, date string, fields map[string]interface{}) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id_employee": employeeID, "date": date}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *ExtraHoursRepository) Delete(ctx context.Context, employeeID, date string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id_employee": employeeID, "date": date})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *ExtraHoursRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
