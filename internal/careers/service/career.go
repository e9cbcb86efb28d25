package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	careererrors "careerdesk/internal/careers/errors"
	"careerdesk/internal/careers/events"
	"careerdesk/internal/careers/normalizer"
	"careerdesk/internal/careers/repository"
	"careerdesk/internal/careers/validator"
	"careerdesk/pkg/config"
	apperrors "careerdesk/pkg/errors"
	"careerdesk/pkg/model"
	"careerdesk/pkg/sanitizer"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// richKeys are the only fields allowed to keep limited HTML markup. Every
// other string in the payload is stripped to plain text.
var richKeys = sanitizer.NewRichKeys("description", "workSetupRemarks")

var requiredCreateFields = []string{"jobTitle", "description", "questions", "location", "workSetup", "orgID"}

// immutableFields are never writable through Update.
var immutableFields = []string{"_id", "id", "orgID", "createdAt", "createdBy"}

const (
	maxJobTitleLen    = 150
	maxDescriptionLen = sanitizer.DefaultRichMaxLen
)

type CareerService interface {
	Create(ctx context.Context, raw map[string]any) (*model.Career, error)
	Update(ctx context.Context, id string, raw map[string]any) (map[string]any, error)
	GetByID(ctx context.Context, id string) (*model.Career, error)
	List(ctx context.Context, orgID string, status string, limit int, offset int) ([]*model.Career, int64, error)
}

type careerService struct {
	repo       repository.CareerRepository
	orgRepo    repository.OrganizationRepository
	normalizer *normalizer.Normalizer
	validator  *validator.CareerValidator
	publisher  events.Publisher
	cfg        *config.Config
}

func NewCareerService(
	repo repository.CareerRepository,
	orgRepo repository.OrganizationRepository,
	questionNormalizer *normalizer.Normalizer,
	careerValidator *validator.CareerValidator,
	publisher events.Publisher,
	cfg *config.Config,
) CareerService {
	return &careerService{
		repo:       repo,
		orgRepo:    orgRepo,
		normalizer: questionNormalizer,
		validator:  careerValidator,
		publisher:  publisher,
		cfg:        cfg,
	}
}

func (s *careerService) Create(ctx context.Context, raw map[string]any) (*model.Career, error) {
	if raw == nil {
		return nil, apperrors.InvalidInput("Request body cannot be empty")
	}

	for _, field := range requiredCreateFields {
		if isAbsent(raw[field]) {
			return nil, apperrors.InvalidInput("Missing required field: " + field)
		}
	}

	orgID, _ := raw["orgID"].(string)
	if !sanitizer.IsValidObjectID(orgID) {
		return nil, apperrors.InvalidInput("Invalid orgID format")
	}

	sanitized, ok := sanitizer.DeepSanitize(raw, richKeys).(map[string]any)
	if !ok {
		return nil, apperrors.InvalidInput("Request body must be a JSON object")
	}

	career, err := s.assembleCareer(sanitized, orgID)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(career); err != nil {
		s.cfg.Log.Warn("Career validation failed",
			"job_title", career.JobTitle,
			"org_id", orgID,
			"error", err,
		)
		return nil, apperrors.Validation("Career validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	// Count and insert run in one transaction so two concurrent creates
	// cannot both pass the quota check.
	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		limits, err := s.orgRepo.FindPlanLimits(sessCtx, orgID)
		if err != nil {
			if errors.Is(err, careererrors.ErrOrgNotFound) {
				return apperrors.NotFoundWithID("Organization", orgID)
			}
			return apperrors.Internal("Failed to look up organization plan", err)
		}

		activeCount, err := s.repo.CountActive(sessCtx, orgID)
		if err != nil {
			return apperrors.Internal("Failed to count active careers", err)
		}

		if activeCount >= int64(limits.TotalSlots()) {
			return apperrors.LimitExceeded("Job posting limit reached for the current plan")
		}

		return s.repo.Create(sessCtx, career)
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create career",
			"job_title", career.JobTitle,
			"org_id", orgID,
			"error", err,
		)
		return nil, err
	}

	s.publisher.CareerCreated(ctx, career)

	s.cfg.Log.Info("Career created successfully",
		"id", career.ID,
		"job_title", career.JobTitle,
		"org_id", orgID,
		"questions", len(career.PreScreeningQuestions),
	)
	return career, nil
}

func (s *careerService) Update(ctx context.Context, id string, raw map[string]any) (map[string]any, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Career ID cannot be empty")
	}
	if !sanitizer.IsValidObjectID(id) {
		return nil, apperrors.InvalidInput("Invalid career ID format")
	}
	if raw == nil {
		return nil, apperrors.InvalidInput("Request body cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, careererrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Career", id)
		}
		if errors.Is(err, careererrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid career ID format")
		}
		return nil, apperrors.Internal("Failed to check career existence", err)
	}

	sanitized, ok := sanitizer.DeepSanitize(raw, richKeys).(map[string]any)
	if !ok {
		return nil, apperrors.InvalidInput("Request body must be a JSON object")
	}
	for _, field := range immutableFields {
		delete(sanitized, field)
	}

	fields, err := s.assembleUpdate(sanitized)
	if err != nil {
		return nil, err
	}

	merged := s.mergeCareerUpdates(existing, fields)
	if err := s.validator.Validate(merged); err != nil {
		s.cfg.Log.Warn("Career validation failed",
			"id", id,
			"error", err,
		)
		return nil, apperrors.Validation("Career validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	fields["updatedAt"] = now
	fields["lastActivityAt"] = now

	if _, err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, careererrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Career", id)
		}
		s.cfg.Log.Error("Failed to update career",
			"id", id,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to update career", err)
	}

	s.publisher.CareerUpdated(ctx, merged)

	s.cfg.Log.Info("Career updated successfully", "id", id, "fields", len(fields))
	return fields, nil
}

func (s *careerService) GetByID(ctx context.Context, id string) (*model.Career, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Career ID cannot be empty")
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, careererrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Career", id)
		}
		if errors.Is(err, careererrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid career ID format")
		}
		s.cfg.Log.Error("Failed to get career by ID",
			"id", id,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve career", err)
	}

	return c, nil
}

func (s *careerService) List(ctx context.Context, orgID string, status string, limit int, offset int) ([]*model.Career, int64, error) {
	if !sanitizer.IsValidObjectID(orgID) {
		return nil, 0, apperrors.InvalidInput("Invalid orgID format")
	}

	switch status {
	case "":
		status = model.CareerStatusActive
	case model.CareerStatusActive, model.CareerStatusInactive, "all":
	default:
		return nil, 0, apperrors.InvalidInput("Status must be one of: active, inactive, all")
	}
	if status == "all" {
		status = ""
	}

	limit = config.NormalizePaginationLimit(limit)
	if offset < 0 {
		offset = 0
	}

	sharedCtx, cancel := context.WithTimeout(ctx, s.cfg.ReadTimeout)
	defer cancel()

	var count int64
	var careers []*model.Career
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountByOrg(sharedCtx, orgID, status)
		if err != nil {
			s.cfg.Log.Error("Failed to count careers", "org_id", orgID, "error", err)
			errCount = apperrors.Internal("Failed to count careers", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		careers, err = s.repo.FindByOrg(sharedCtx, orgID, status, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to list careers",
				"org_id", orgID,
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to retrieve careers", err)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}
	return careers, count, nil
}

// assembleCareer builds the full document for the create flow from an
// already deep-sanitized payload.
func (s *careerService) assembleCareer(sanitized map[string]any, orgID string) (*model.Career, error) {
	jobTitle := sanitizer.Truncate(trimmedString(sanitized, "jobTitle"), maxJobTitleLen)
	if jobTitle == "" {
		return nil, apperrors.InvalidInput("jobTitle is empty after sanitization")
	}

	description := sanitizer.SanitizeRich(trimmedString(sanitized, "description"), maxDescriptionLen)
	if description == "" {
		return nil, apperrors.InvalidInput("description is empty after sanitization")
	}

	questions, warnings := s.normalizer.Normalize(sanitized["preScreeningQuestions"])
	s.logNormalizationWarnings(orgID, warnings)

	career := &model.Career{
		PublicID:              uuid.New().String(),
		JobTitle:              jobTitle,
		Description:           description,
		Questions:             stringSlice(sanitized["questions"]),
		PreScreeningQuestions: questions,
		Location:              trimmedString(sanitized, "location"),
		Country:               trimmedString(sanitized, "country"),
		Province:              trimmedString(sanitized, "province"),
		EmploymentType:        trimmedString(sanitized, "employmentType"),
		WorkSetup:             trimmedString(sanitized, "workSetup"),
		WorkSetupRemarks:      sanitizer.SanitizeRich(trimmedString(sanitized, "workSetupRemarks"), 2000),
		SalaryNegotiable:      boolValue(sanitized["salaryNegotiable"]),
		MinimumSalary:         salaryValue(sanitized["minimumSalary"]),
		MaximumSalary:         salaryValue(sanitized["maximumSalary"]),
		ScreeningSetting:      trimmedString(sanitized, "screeningSetting"),
		RequireVideo:          boolValue(sanitized["requireVideo"]),
		Status:                normalizeStatus(sanitized["status"]),
		OrgID:                 orgID,
		CreatedBy:             trimmedString(sanitized, "createdBy"),
		LastEditedBy:          trimmedString(sanitized, "lastEditedBy"),
	}

	return career, nil
}

// assembleUpdate maps the writable fields present in the payload to their
// persisted form. Absent keys stay untouched.
func (s *careerService) assembleUpdate(sanitized map[string]any) (bson.M, error) {
	fields := bson.M{}

	if _, ok := sanitized["jobTitle"]; ok {
		jobTitle := sanitizer.Truncate(trimmedString(sanitized, "jobTitle"), maxJobTitleLen)
		if jobTitle == "" {
			return nil, apperrors.InvalidInput("jobTitle is empty after sanitization")
		}
		fields["jobTitle"] = jobTitle
	}

	if _, ok := sanitized["description"]; ok {
		description := sanitizer.SanitizeRich(trimmedString(sanitized, "description"), maxDescriptionLen)
		if description == "" {
			return nil, apperrors.InvalidInput("description is empty after sanitization")
		}
		fields["description"] = description
	}

	if _, ok := sanitized["questions"]; ok {
		fields["questions"] = stringSlice(sanitized["questions"])
	}

	if raw, ok := sanitized["preScreeningQuestions"]; ok {
		questions, warnings := s.normalizer.Normalize(raw)
		s.logNormalizationWarnings("", warnings)
		fields["preScreeningQuestions"] = questions
	}

	for _, key := range []string{"location", "country", "province", "employmentType", "workSetup", "screeningSetting", "lastEditedBy"} {
		if _, ok := sanitized[key]; ok {
			fields[key] = trimmedString(sanitized, key)
		}
	}

	if _, ok := sanitized["workSetupRemarks"]; ok {
		fields["workSetupRemarks"] = sanitizer.SanitizeRich(trimmedString(sanitized, "workSetupRemarks"), 2000)
	}

	if v, ok := sanitized["salaryNegotiable"]; ok {
		fields["salaryNegotiable"] = boolValue(v)
	}
	if v, ok := sanitized["requireVideo"]; ok {
		fields["requireVideo"] = boolValue(v)
	}

	if v, ok := sanitized["minimumSalary"]; ok {
		fields["minimumSalary"] = salaryValue(v)
	}
	if v, ok := sanitized["maximumSalary"]; ok {
		fields["maximumSalary"] = salaryValue(v)
	}

	if v, ok := sanitized["status"]; ok {
		fields["status"] = normalizeStatus(v)
	}

	if len(fields) == 0 {
		return nil, apperrors.InvalidInput("No updatable fields in request body")
	}

	return fields, nil
}

func (s *careerService) mergeCareerUpdates(existing *model.Career, fields bson.M) *model.Career {
	merged := *existing

	if v, ok := fields["jobTitle"].(string); ok {
		merged.JobTitle = v
	}
	if v, ok := fields["description"].(string); ok {
		merged.Description = v
	}
	if v, ok := fields["questions"].([]string); ok {
		merged.Questions = v
	}
	if v, ok := fields["preScreeningQuestions"].([]model.PreScreeningQuestion); ok {
		merged.PreScreeningQuestions = v
	}
	if v, ok := fields["location"].(string); ok {
		merged.Location = v
	}
	if v, ok := fields["country"].(string); ok {
		merged.Country = v
	}
	if v, ok := fields["province"].(string); ok {
		merged.Province = v
	}
	if v, ok := fields["employmentType"].(string); ok {
		merged.EmploymentType = v
	}
	if v, ok := fields["workSetup"].(string); ok {
		merged.WorkSetup = v
	}
	if v, ok := fields["workSetupRemarks"].(string); ok {
		merged.WorkSetupRemarks = v
	}
	if v, ok := fields["salaryNegotiable"].(bool); ok {
		merged.SalaryNegotiable = v
	}
	if v, ok := fields["minimumSalary"].(*float64); ok {
		merged.MinimumSalary = v
	}
	if v, ok := fields["maximumSalary"].(*float64); ok {
		merged.MaximumSalary = v
	}
	if v, ok := fields["screeningSetting"].(string); ok {
		merged.ScreeningSetting = v
	}
	if v, ok := fields["requireVideo"].(bool); ok {
		merged.RequireVideo = v
	}
	if v, ok := fields["status"].(string); ok {
		merged.Status = v
	}
	if v, ok := fields["lastEditedBy"].(string); ok {
		merged.LastEditedBy = v
	}

	return &merged
}

func (s *careerService) logNormalizationWarnings(orgID string, warnings []string) {
	for _, w := range warnings {
		s.cfg.Log.Warn("Question normalization repair",
			"org_id", orgID,
			"warning", w,
		)
	}
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func trimmedString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func stringSlice(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func boolValue(raw any) bool {
	b, _ := raw.(bool)
	return b
}

// salaryValue coerces a salary input, clamping negatives to zero. Anything
// non-numeric resolves to absent.
func salaryValue(raw any) *float64 {
	if raw == nil {
		return nil
	}
	v, ok := sanitizer.ClampNumber(raw, sanitizer.Bounds{Min: sanitizer.Float64(0)})
	if !ok {
		return nil
	}
	return &v
}

func normalizeStatus(raw any) string {
	s, _ := raw.(string)
	if strings.ToLower(strings.TrimSpace(s)) == model.CareerStatusInactive {
		return model.CareerStatusInactive
	}
	return model.CareerStatusActive
}
