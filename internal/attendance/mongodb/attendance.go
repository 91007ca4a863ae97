package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/frahmantamala/hr-management/internal/attendance"
	hrmongo "github.com/frahmantamala/hr-management/internal/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var hideID = bson.M{"_id": 0}

type AttendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) attendance.RepositoryAPI {
	return &AttendanceRepository{coll: db.Collection(hrmongo.CollectionAttendance)}
}

func (r *AttendanceRepository) find(ctx context.Context, filter bson.M) ([]attendance.Record, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetProjection(hideID))
	if err != nil {
		return nil, err
	}
	var recs []attendance.Record
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	return r.find(ctx, bson.M{})
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	return r.find(ctx, bson.M{"id_employee": employeeID})
}

func (r *AttendanceRepository) Get(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	var rec attendance.Record
	err := r.coll.FindOne(ctx, day(employeeID, date), options.FindOne().SetProjection(hideID)).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *AttendanceRepository) Insert(ctx context.Context, rec attendance.Record) (string, error) {
	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return "", err
	}
	return hrmongo.IDString(res.InsertedID), nil
}

func (r *AttendanceRepository) UpdateByEmployee(ctx context.Context, employeeID string, fields map[string]interface{}) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id_employee": employeeID}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, employeeID, date string, fields map[string]interface{}) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, day(employeeID, date), bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, employeeID, date string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, day(employeeID, date))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *AttendanceRepository) PushSession(ctx context.Context, employeeID, date string, s attendance.Session) (*attendance.Record, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(hideID)

	var rec attendance.Record
	err := r.coll.FindOneAndUpdate(ctx, day(employeeID, date), bson.M{"$push": bson.M{"sessions": s}}, opts).Decode(&rec)
	if err != nil {
		return nil, fmt.Errorf("push session: %w", err)
	}
	return &rec, nil
}

func (r *AttendanceRepository) CloseSession(ctx context.Context, employeeID, date, checkout string) (*attendance.Record, error) {
	filter := day(employeeID, date)
	filter["sessions"] = bson.M{"$elemMatch": bson.M{"checkout": nil}}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(hideID)

	var rec attendance.Record
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": bson.M{"sessions.$.checkout": checkout}}, opts).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("close session: %w", err)
	}
	return &rec, nil
}

func (r *AttendanceRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func day(employeeID, date string) bson.M {
	return bson.M{"id_employee": employeeID, "date": date}
}
