package model

import "time"

const (
	CareerStatusActive   = "active"
	CareerStatusInactive = "inactive"
)

// Career is a job posting. Field names mirror the persisted documents, which
// use camelCase keys.
type Career struct {
	ID                    string                 `bson:"_id,omitempty" json:"_id,omitempty" validate:"omitempty,mongodb"`
	PublicID              string                 `bson:"id" json:"id"`
	JobTitle              string                 `bson:"jobTitle" json:"jobTitle" validate:"required,max=150"`
	Description           string                 `bson:"description" json:"description" validate:"required,max=20000"`
	Questions             []string               `bson:"questions" json:"questions"`
	PreScreeningQuestions []PreScreeningQuestion `bson:"preScreeningQuestions" json:"preScreeningQuestions" validate:"max=25"`
	Location              string                 `bson:"location" json:"location" validate:"required,max=300"`
	Country               string                 `bson:"country,omitempty" json:"country,omitempty" validate:"omitempty,max=100"`
	Province              string                 `bson:"province,omitempty" json:"province,omitempty" validate:"omitempty,max=100"`
	EmploymentType        string                 `bson:"employmentType,omitempty" json:"employmentType,omitempty" validate:"omitempty,max=100"`
	WorkSetup             string                 `bson:"workSetup" json:"workSetup" validate:"required,max=100"`
	WorkSetupRemarks      string                 `bson:"workSetupRemarks,omitempty" json:"workSetupRemarks,omitempty" validate:"omitempty,max=2000"`
	SalaryNegotiable      bool                   `bson:"salaryNegotiable" json:"salaryNegotiable"`
	MinimumSalary         *float64               `bson:"minimumSalary,omitempty" json:"minimumSalary,omitempty" validate:"omitempty,min=0"`
	MaximumSalary         *float64               `bson:"maximumSalary,omitempty" json:"maximumSalary,omitempty" validate:"omitempty,min=0"`
	ScreeningSetting      string                 `bson:"screeningSetting,omitempty" json:"screeningSetting,omitempty" validate:"omitempty,max=100"`
	RequireVideo          bool                   `bson:"requireVideo" json:"requireVideo"`
	Status                string                 `bson:"status" json:"status" validate:"oneof=active inactive"`
	OrgID                 string                 `bson:"orgID" json:"orgID" validate:"required,len=24,hexadecimal"`
	CreatedBy             string                 `bson:"createdBy,omitempty" json:"createdBy,omitempty" validate:"omitempty,max=200"`
	LastEditedBy          string                 `bson:"lastEditedBy,omitempty" json:"lastEditedBy,omitempty" validate:"omitempty,max=200"`
	CreatedAt             time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time              `bson:"updatedAt" json:"updatedAt"`
	LastActivityAt        time.Time              `bson:"lastActivityAt" json:"lastActivityAt"`
}
