package admissions

import "time"

const (
	StatusInProgress  = "in_progress"
	StatusCompleted   = "completed"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusOnHold      = "on_hold"

	FirstStep = 1
	LastStep  = 6
)

var validStatuses = map[string]struct{}{
	StatusInProgress:  {},
	StatusCompleted:   {},
	StatusUnderReview: {},
	StatusApproved:    {},
	StatusRejected:    {},
	StatusOnHold:      {},
}

func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

// StepData is the per-step payload as submitted by the enrollment wizard.
// Steps carry heterogeneous form sections, so the shape is left open.
type StepData map[string]interface{}

type Application struct {
	ID            string              `bson:"_id,omitempty" json:"id"`
	ApplicationID string              `bson:"application_id" json:"applicationId"`
	CurrentStep   int                 `bson:"current_step" json:"currentStep"`
	Status        string              `bson:"status" json:"status"`
	Steps         map[string]StepData `bson:"steps" json:"steps"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updatedAt"`
	CompletedAt   *time.Time          `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
}

type StepRequest struct {
	ApplicationID string   `json:"applicationId"`
	Step          int      `json:"step" validate:"required,min=1,max=6"`
	Data          StepData `json:"data" validate:"required"`
}

type CompleteRequest struct {
	ApplicationID string `json:"applicationId" validate:"required"`
}

type AdminStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress completed under_review approved rejected on_hold"`
}
