package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peoplehr/leave-system/internal/core/domain"
	"github.com/peoplehr/leave-system/internal/core/ports"
)

const leavesCollection = "leaves"

type LeaveRepository struct {
	coll *mongo.Collection
}

func NewLeaveRepository(db *mongo.Database) *LeaveRepository {
	return &LeaveRepository{coll: db.Collection(leavesCollection)}
}

type mongoLeave struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	LeaveType string             `bson:"leave_type"`
	StartDate time.Time          `bson:"start_date"`
	EndDate   time.Time          `bson:"end_date"`
	Reason    string             `bson:"reason,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *LeaveRepository) Create(ctx context.Context, leave *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoLeave{
		UserID:    leave.UserID,
		LeaveType: string(leave.LeaveType),
		StartDate: leave.StartDate,
		EndDate:   leave.EndDate,
		Reason:    leave.Reason,
		CreatedAt: leave.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert leave: %w", err)
	}

	created := *leave
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *LeaveRepository) FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLeaveNotFound
	}

	var ml mongoLeave
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("find leave: %w", err)
	}
	return ml.toDomain(), nil
}

// FindOverlapping returns a stored request for userID whose inclusive day
// range intersects [start, end]. Interval-overlap math: an existing request
// overlaps when its start is not after the candidate's end and its end is
// not before the candidate's start.
func (r *LeaveRepository) FindOverlapping(ctx context.Context, userID string, start, end time.Time) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":    userID,
		"start_date": bson.M{"$lte": end},
		"end_date":   bson.M{"$gte": start},
	}

	var ml mongoLeave
	if err := r.coll.FindOne(ctx, filter).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find overlapping leave: %w", err)
	}
	return ml.toDomain(), nil
}

// List returns one page of leaves matching filter, ordered by created_at
// ascending for deterministic pagination, plus the total match count.
func (r *LeaveRepository) List(ctx context.Context, filter ports.ListLeavesFilter) ([]*domain.LeaveRequest, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": filter.UserID}
	if filter.LeaveType != "" {
		query["leave_type"] = string(filter.LeaveType)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count leaves: %w", err)
	}

	skip := int64(filter.Page-1) * int64(filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list leaves: %w", err)
	}
	defer cur.Close(ctx)

	var leaves []*domain.LeaveRequest
	for cur.Next(ctx) {
		var ml mongoLeave
		if err := cur.Decode(&ml); err != nil {
			return nil, 0, fmt.Errorf("decode leave: %w", err)
		}
		leaves = append(leaves, ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate leaves: %w", err)
	}

	return leaves, total, nil
}

// EnsureIndexes creates the indexes backing the overlap query and list ordering.
func (r *LeaveRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "start_date", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "end_date", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (ml *mongoLeave) toDomain() *domain.LeaveRequest {
	return &domain.LeaveRequest{
		ID:        ml.ID.Hex(),
		UserID:    ml.UserID,
		LeaveType: domain.LeaveType(ml.LeaveType),
		StartDate: ml.StartDate.UTC(),
		EndDate:   ml.EndDate.UTC(),
		Reason:    ml.Reason,
		CreatedAt: ml.CreatedAt.UTC(),
	}
}
