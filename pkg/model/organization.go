package model

// Organization is the owner of career postings. Only the fields this service
// reads are modeled; the documents carry more.
type Organization struct {
	ID            string `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string `bson:"name,omitempty" json:"name,omitempty"`
	PlanID        string `bson:"planId" json:"planId"`
	ExtraJobSlots int    `bson:"extraJobSlots,omitempty" json:"extraJobSlots,omitempty"`
}

// OrganizationPlan holds the subscription plan's posting quota.
type OrganizationPlan struct {
	ID       string `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	JobLimit int    `bson:"jobLimit" json:"jobLimit"`
}

// OrgPlanLimits is the joined view of an organization and its plan used for
// the job-slot quota check.
type OrgPlanLimits struct {
	JobLimit      int `bson:"jobLimit" json:"jobLimit"`
	ExtraJobSlots int `bson:"extraJobSlots" json:"extraJobSlots"`
}

// TotalSlots is the number of simultaneously active postings the plan allows.
func (l OrgPlanLimits) TotalSlots() int {
	return l.JobLimit + l.ExtraJobSlots
}
