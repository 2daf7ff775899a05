package admissions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/suyashwaghate123/happyhomesbackend/internal/leads"
)

var (
	ErrInvalidStep   = errors.New("invalid step number")
	ErrInvalidStatus = errors.New("invalid status")
)

// LeadRecorder persists the lead synthesized when an application completes.
// *leads.Service satisfies it.
type LeadRecorder interface {
	RecordDerivedLead(ctx context.Context, lead leads.Lead) (leads.Lead, error)
	NotifyLead(ctx context.Context, lead leads.Lead, kind string) error
}

type Service struct {
	repo     Repository
	recorder LeadRecorder
	location *time.Location

	idMu     sync.Mutex
	idSuffix int64
}

func NewService(repo Repository, recorder LeadRecorder, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		location: location,
		idSuffix: time.Now().UnixMilli() % 100000000,
	}
}

// newApplicationID mints identifiers of the form HH plus eight digits. The
// suffix starts from the current timestamp and increments under a lock so
// concurrent submissions cannot collide within the process.
func (s *Service) newApplicationID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	s.idSuffix = (s.idSuffix + 1) % 100000000
	return fmt.Sprintf("HH%08d", s.idSuffix)
}

// SubmitStep creates an application on the first submission and merges step
// payloads on subsequent ones. Steps may arrive out of order and may be
// resubmitted; the last payload for a given step wins.
func (s *Service) SubmitStep(ctx context.Context, req StepRequest) (Application, error) {
	if req.Step < FirstStep || req.Step > LastStep {
		return Application{}, ErrInvalidStep
	}
	stepKey := "step" + strconv.Itoa(req.Step)
	now := time.Now().In(s.location)

	applicationID := strings.TrimSpace(req.ApplicationID)
	if applicationID == "" {
		app := Application{
			ApplicationID: s.newApplicationID(),
			CurrentStep:   req.Step,
			Status:        StatusInProgress,
			Steps:         map[string]StepData{stepKey: req.Data},
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.repo.Create(ctx, &app); err != nil {
			return Application{}, err
		}
		return app, nil
	}

	app, err := s.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return Application{}, err
	}

	if app.Steps == nil {
		app.Steps = make(map[string]StepData)
	}
	app.Steps[stepKey] = req.Data
	app.CurrentStep = req.Step
	app.UpdatedAt = now

	if err := s.repo.Save(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// Complete marks the application finished and synthesizes a lead from the
// applicant step, falling back to guardian contact details where the
// applicant left fields blank.
func (s *Service) Complete(ctx context.Context, applicationID string) (Application, leads.Lead, error) {
	app, err := s.repo.GetByApplicationID(ctx, strings.TrimSpace(applicationID))
	if err != nil {
		return Application{}, leads.Lead{}, err
	}

	now := time.Now().In(s.location)
	app.Status = StatusCompleted
	app.CompletedAt = &now
	app.UpdatedAt = now

	if err := s.repo.Save(ctx, app); err != nil {
		return Application{}, leads.Lead{}, err
	}

	lead := s.deriveLead(app)
	if s.recorder != nil {
		recorded, err := s.recorder.RecordDerivedLead(ctx, lead)
		if err != nil {
			return Application{}, leads.Lead{}, fmt.Errorf("record derived lead: %w", err)
		}
		lead = recorded
	}

	return app, lead, nil
}

func (s *Service) Get(ctx context.Context, applicationID string) (Application, error) {
	return s.repo.GetByApplicationID(ctx, strings.TrimSpace(applicationID))
}

func (s *Service) ListAdmin(ctx context.Context, status string, limit, offset int64) ([]Application, int64, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !IsValidStatus(status) {
		return nil, 0, ErrInvalidStatus
	}

	items, err := s.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateStatus moves an application through the review states
// (under_review, approved, rejected, on_hold and back).
func (s *Service) UpdateStatus(ctx context.Context, applicationID, status string) (Application, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidStatus(status) {
		return Application{}, ErrInvalidStatus
	}

	app, err := s.repo.GetByApplicationID(ctx, strings.TrimSpace(applicationID))
	if err != nil {
		return Application{}, err
	}

	app.Status = status
	app.UpdatedAt = time.Now().In(s.location)

	if err := s.repo.Save(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (s *Service) NotifyCompleted(ctx context.Context, lead leads.Lead) error {
	if s.recorder == nil {
		return nil
	}
	return s.recorder.NotifyLead(ctx, lead, "Admission Application")
}

func (s *Service) deriveLead(app Application) leads.Lead {
	applicant := app.Steps["step1"]
	guardian := app.Steps["step6"]

	name := strings.TrimSpace(stringField(applicant, "firstName") + " " + stringField(applicant, "lastName"))
	if name == "" {
		name = "Unknown"
	}
	email := stringField(applicant, "email")
	if email == "" {
		email = stringField(guardian, "guardianEmail")
	}
	if email == "" {
		email = "no-email@example.com"
	}
	phone := stringField(applicant, "phone")
	if phone == "" {
		phone = stringField(guardian, "guardianPhone")
	}
	if phone == "" {
		phone = "N/A"
	}

	return leads.Lead{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Message:  "Admission application submitted. Application ID: " + app.ApplicationID,
		Source:   leads.SourceOther,
		Status:   leads.StatusNew,
		Priority: leads.PriorityHigh,
	}
}

func stringField(data StepData, key string) string {
	if data == nil {
		return ""
	}
	value, ok := data[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
