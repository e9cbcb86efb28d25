package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	careererrors "careerdesk/internal/careers/errors"
	"careerdesk/pkg/config"
	mongotx "careerdesk/pkg/db/mongo"
	"careerdesk/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "careers"
)

type mongoCareerRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

type CareerRepository interface {
	Create(ctx context.Context, c *model.Career) error
	FindByID(ctx context.Context, id string) (*model.Career, error)
	FindByOrg(ctx context.Context, orgID string, status string, limit int, offset int) ([]*model.Career, error)
	Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
	CountActive(ctx context.Context, orgID string) (int64, error)
	CountByOrg(ctx context.Context, orgID string, status string) (int64, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

func NewMongoCareerRepository(cfg *config.Config) CareerRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCareerRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout wraps the context with a timeout if not already in a transaction.
// When inside a transaction (SessionContext), returns the original context unchanged
// with a no-op cancel function, as we cannot wrap SessionContext without breaking
// transaction semantics.
func (r *mongoCareerRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining > timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoCareerRepository) Create(ctx context.Context, c *model.Career) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	c.CreatedAt = now
	c.UpdatedAt = now
	c.LastActivityAt = now

	result, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create career: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}

func (r *mongoCareerRepository) FindByID(ctx context.Context, id string) (*model.Career, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", careererrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}

	var c model.Career
	err = r.collection.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", careererrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find career: %w", err)
	}

	return &c, nil
}

func (r *mongoCareerRepository) FindByOrg(ctx context.Context, orgID string, status string, limit int, offset int) ([]*model.Career, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{"orgID": orgID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query careers: %w", err)
	}
	defer cursor.Close(ctx)

	var careers []*model.Career
	if err = cursor.All(ctx, &careers); err != nil {
		return nil, fmt.Errorf("failed to decode careers: %w", err)
	}
	return careers, nil
}

func (r *mongoCareerRepository) Update(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", careererrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": fields}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update career: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: %s", careererrors.ErrNotFound, id)
	}

	return result, nil
}

func (r *mongoCareerRepository) CountActive(ctx context.Context, orgID string) (int64, error) {
	return r.CountByOrg(ctx, orgID, model.CareerStatusActive)
}

func (r *mongoCareerRepository) CountByOrg(ctx context.Context, orgID string, status string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{"orgID": orgID}
	if status != "" {
		filter["status"] = status
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count careers: %w", err)
	}
	return count, nil
}

func (r *mongoCareerRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
