package validator

import (
	"strings"
	"testing"

	"careerdesk/pkg/logger"
	"careerdesk/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "text"})
}

func validCareer() *model.Career {
	return &model.Career{
		JobTitle:    "Backend Engineer",
		Description: "Build and operate services",
		Location:    "Manila",
		WorkSetup:   "Hybrid",
		Status:      model.CareerStatusActive,
		OrgID:       "507f1f77bcf86cd799439011",
	}
}

func TestValidateAcceptsValidCareer(t *testing.T) {
	v := NewCareerValidator(testLogger())

	if err := v.Validate(validCareer()); err != nil {
		t.Errorf("expected valid career to pass, got: %v", err)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	v := NewCareerValidator(testLogger())

	tests := []struct {
		name   string
		mutate func(*model.Career)
		field  string
	}{
		{"missing job title", func(c *model.Career) { c.JobTitle = "" }, "JobTitle"},
		{"missing description", func(c *model.Career) { c.Description = "" }, "Description"},
		{"missing location", func(c *model.Career) { c.Location = "" }, "Location"},
		{"missing work setup", func(c *model.Career) { c.WorkSetup = "" }, "WorkSetup"},
		{"missing org id", func(c *model.Career) { c.OrgID = "" }, "OrgID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCareer()
			tt.mutate(c)
			err := v.Validate(c)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error naming %s, got: %v", tt.field, err)
			}
		})
	}
}

func TestValidateFieldLimits(t *testing.T) {
	v := NewCareerValidator(testLogger())

	tests := []struct {
		name   string
		mutate func(*model.Career)
	}{
		{"job title too long", func(c *model.Career) { c.JobTitle = strings.Repeat("a", 151) }},
		{"location too long", func(c *model.Career) { c.Location = strings.Repeat("a", 301) }},
		{"invalid org id length", func(c *model.Career) { c.OrgID = "abc123" }},
		{"non-hex org id", func(c *model.Career) { c.OrgID = "zzzzzzzzzzzzzzzzzzzzzzzz" }},
		{"invalid status", func(c *model.Career) { c.Status = "archived" }},
		{"negative minimum salary", func(c *model.Career) { n := -1.0; c.MinimumSalary = &n }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCareer()
			tt.mutate(c)
			if err := v.Validate(c); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidateSalaryBounds(t *testing.T) {
	v := NewCareerValidator(testLogger())

	tests := []struct {
		name       string
		min, max   *float64
		negotiable bool
		wantErr    bool
	}{
		{"ordered bounds", f(1000), f(2000), false, false},
		{"equal bounds", f(1000), f(1000), false, false},
		{"inverted bounds", f(2000), f(1000), false, true},
		{"inverted but negotiable", f(2000), f(1000), true, false},
		{"only min", f(1000), nil, false, false},
		{"only max", nil, f(2000), false, false},
		{"no bounds", nil, nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCareer()
			c.MinimumSalary = tt.min
			c.MaximumSalary = tt.max
			c.SalaryNegotiable = tt.negotiable

			err := v.Validate(c)
			if tt.wantErr && err == nil {
				t.Error("expected salary bounds error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateQuestionCap(t *testing.T) {
	v := NewCareerValidator(testLogger())

	c := validCareer()
	for i := 0; i < 26; i++ {
		c.PreScreeningQuestions = append(c.PreScreeningQuestions, model.PreScreeningQuestion{
			ID: "q", Key: "q", Title: "t", Type: model.QuestionTypeShort, Required: true,
		})
	}

	if err := v.Validate(c); err == nil {
		t.Error("expected error for more than 25 questions, got nil")
	}
}

func f(v float64) *float64 {
	return &v
}
