package repository

import (
	"context"
	"fmt"
	"time"

	careererrors "careerdesk/internal/careers/errors"
	"careerdesk/pkg/config"
	"careerdesk/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	OrganizationCollectionName = "organizations"
	PlanCollectionName         = "organization-plans"
)

type mongoOrganizationRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type OrganizationRepository interface {
	FindPlanLimits(ctx context.Context, orgID string) (*model.OrgPlanLimits, error)
}

func NewMongoOrganizationRepository(cfg *config.Config) OrganizationRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoOrganizationRepository{
		cfg:        cfg,
		collection: db.Collection(OrganizationCollectionName),
	}
}

func (r *mongoOrganizationRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// FindPlanLimits joins the organization with its plan and returns the
// job slot quota inputs. Missing plan documents resolve to a zero job limit
// rather than an error so orphaned organizations stay readable.
func (r *mongoOrganizationRepository) FindPlanLimits(ctx context.Context, orgID string) (*model.OrgPlanLimits, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(orgID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", careererrors.ErrInvalidID, orgID)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": objectID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         PlanCollectionName,
			"localField":   "planId",
			"foreignField": "_id",
			"as":           "plan",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$plan",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"jobLimit":      bson.M{"$ifNull": bson.A{"$plan.jobLimit", 0}},
			"extraJobSlots": bson.M{"$ifNull": bson.A{"$extraJobSlots", 0}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to query organization plan: %w", err)
	}
	defer cursor.Close(ctx)

	var results []model.OrgPlanLimits
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode organization plan: %w", err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", careererrors.ErrOrgNotFound, orgID)
	}

	return &results[0], nil
}
