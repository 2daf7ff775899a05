package leads

import "time"

const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
	StatusClosed    = "closed"
	StatusSpam      = "spam"

	SourceContactForm = "contact_form"
	SourceAppointment = "appointment"
	SourceCallback    = "callback"
	SourceNewsletter  = "newsletter"
	SourceOther       = "other"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	VisitPending   = "pending"
	VisitConfirmed = "confirmed"
	VisitCompleted = "completed"
	VisitCancelled = "cancelled"
	VisitNoShow    = "no_show"
)

var validStatuses = map[string]struct{}{
	StatusNew:       {},
	StatusContacted: {},
	StatusQualified: {},
	StatusConverted: {},
	StatusClosed:    {},
	StatusSpam:      {},
}

var validSources = map[string]struct{}{
	SourceContactForm: {},
	SourceAppointment: {},
	SourceCallback:    {},
	SourceNewsletter:  {},
	SourceOther:       {},
}

var validPriorities = map[string]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
	PriorityUrgent: {},
}

func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

func IsValidSource(value string) bool {
	_, ok := validSources[value]
	return ok
}

func IsValidPriority(value string) bool {
	_, ok := validPriorities[value]
	return ok
}

type Note struct {
	Text    string    `bson:"text" json:"text"`
	AddedBy string    `bson:"added_by" json:"addedBy"`
	AddedAt time.Time `bson:"added_at" json:"addedAt"`
}

type Lead struct {
	ID                string     `bson:"_id,omitempty" json:"id"`
	Name              string     `bson:"name" json:"name"`
	Email             string     `bson:"email" json:"email"`
	Phone             string     `bson:"phone" json:"phone"`
	Subject           string     `bson:"subject,omitempty" json:"subject,omitempty"`
	Message           string     `bson:"message" json:"message"`
	Source            string     `bson:"source" json:"source"`
	ServiceInterested string     `bson:"service_interested,omitempty" json:"serviceInterested,omitempty"`
	AppointmentDate   *time.Time `bson:"appointment_date,omitempty" json:"appointmentDate,omitempty"`
	AppointmentTime   string     `bson:"appointment_time,omitempty" json:"appointmentTime,omitempty"`
	Status            string     `bson:"status" json:"status"`
	Priority          string     `bson:"priority" json:"priority"`
	Notes             []Note     `bson:"notes,omitempty" json:"notes,omitempty"`
	IPAddress         string     `bson:"ip_address,omitempty" json:"ipAddress,omitempty"`
	UserAgent         string     `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	CreatedAt         time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time  `bson:"updated_at" json:"updatedAt"`
}

type Visitor struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Service   string    `bson:"service" json:"service"`
	VisitDate string    `bson:"visit_date" json:"visitDate"`
	VisitTime string    `bson:"visit_time" json:"visitTime"`
	Status    string    `bson:"status" json:"status"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	IPAddress string    `bson:"ip_address,omitempty" json:"ipAddress,omitempty"`
	UserAgent string    `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// PreferredContactMethod is validated on every lead form but not stored;
// the lead record itself has no such field.
type InquiryRequest struct {
	Name                   string `json:"name" validate:"required"`
	Email                  string `json:"email" validate:"required,email"`
	Phone                  string `json:"phone" validate:"required,phone"`
	Message                string `json:"message" validate:"omitempty,max=1000"`
	InquiryType            string `json:"inquiryType" validate:"omitempty,oneof=general admission visit pricing other"`
	PreferredContactMethod string `json:"preferredContactMethod" validate:"omitempty,oneof=phone email whatsapp"`
}

type AppointmentRequest struct {
	Name                   string `json:"name" validate:"required"`
	Email                  string `json:"email" validate:"required,email"`
	Phone                  string `json:"phone" validate:"required,phone"`
	Message                string `json:"message" validate:"omitempty,max=1000"`
	PreferredDate          string `json:"preferredDate" validate:"omitempty,date"`
	PreferredTime          string `json:"preferredTime" validate:"omitempty,clock"`
	ServiceInterested      string `json:"serviceInterested"`
	PreferredContactMethod string `json:"preferredContactMethod" validate:"omitempty,oneof=phone email whatsapp"`
}

type ContactRequest struct {
	Name                   string `json:"name" validate:"required"`
	Email                  string `json:"email" validate:"required,email"`
	Phone                  string `json:"phone" validate:"required,phone"`
	Subject                string `json:"subject"`
	Message                string `json:"message" validate:"omitempty,max=1000"`
	PreferredContactMethod string `json:"preferredContactMethod" validate:"omitempty,oneof=phone email whatsapp"`
}

type VisitRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required,phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	Service   string `json:"service" validate:"required"`
	VisitDate string `json:"visitDate" validate:"required,date"`
	VisitTime string `json:"visitTime" validate:"required,clock"`
}

type AdminUpdateRequest struct {
	Status   string `json:"status" validate:"omitempty,oneof=new contacted qualified converted closed spam"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Notes    string `json:"notes" validate:"omitempty,max=1000"`
}

type ListFilter struct {
	Status string
	Source string
}

// RequestMeta carries transport-level attributes recorded alongside a
// submission.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}
