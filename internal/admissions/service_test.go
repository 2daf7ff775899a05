package admissions

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/suyashwaghate123/happyhomesbackend/internal/leads"
)

type recordedLead struct {
	lead leads.Lead
}

type fakeRecorder struct {
	recorded  []recordedLead
	notified  []string
	recordErr error
}

func (f *fakeRecorder) RecordDerivedLead(ctx context.Context, lead leads.Lead) (leads.Lead, error) {
	if f.recordErr != nil {
		return leads.Lead{}, f.recordErr
	}
	f.recorded = append(f.recorded, recordedLead{lead: lead})
	lead.ID = "lead-1"
	return lead, nil
}

func (f *fakeRecorder) NotifyLead(ctx context.Context, lead leads.Lead, kind string) error {
	f.notified = append(f.notified, kind)
	return nil
}

func newTestService(recorder LeadRecorder) *Service {
	return NewService(NewMemoryRepository(), recorder, time.UTC)
}

func TestSubmitStepCreatesApplication(t *testing.T) {
	svc := newTestService(nil)

	app, err := svc.SubmitStep(context.Background(), StepRequest{
		Step: 1,
		Data: StepData{"firstName": "Shanta", "lastName": "Deshpande"},
	})
	if err != nil {
		t.Fatalf("submit step: %v", err)
	}

	if !regexp.MustCompile(`^HH\d{8}$`).MatchString(app.ApplicationID) {
		t.Fatalf("unexpected application id %q", app.ApplicationID)
	}
	if app.Status != StatusInProgress || app.CurrentStep != 1 {
		t.Fatalf("unexpected state: status=%q step=%d", app.Status, app.CurrentStep)
	}
}

func TestSubmitStepMergesAndPreservesEarlierSteps(t *testing.T) {
	svc := newTestService(nil)

	first, err := svc.SubmitStep(context.Background(), StepRequest{
		Step: 1,
		Data: StepData{"firstName": "Shanta"},
	})
	if err != nil {
		t.Fatalf("step 1: %v", err)
	}

	second, err := svc.SubmitStep(context.Background(), StepRequest{
		ApplicationID: first.ApplicationID,
		Step:          2,
		Data:          StepData{"city": "Pune"},
	})
	if err != nil {
		t.Fatalf("step 2: %v", err)
	}

	if second.CurrentStep != 2 {
		t.Fatalf("expected current step 2, got %d", second.CurrentStep)
	}
	if got := second.Steps["step1"]["firstName"]; got != "Shanta" {
		t.Fatalf("step 1 data lost: %v", got)
	}
	if got := second.Steps["step2"]["city"]; got != "Pune" {
		t.Fatalf("step 2 data missing: %v", got)
	}
}

func TestSubmitStepResubmissionOverwritesThatStepOnly(t *testing.T) {
	svc := newTestService(nil)

	first, err := svc.SubmitStep(context.Background(), StepRequest{
		Step: 1,
		Data: StepData{"firstName": "Shanta", "phone": "9876543210"},
	})
	if err != nil {
		t.Fatalf("step 1: %v", err)
	}

	redo, err := svc.SubmitStep(context.Background(), StepRequest{
		ApplicationID: first.ApplicationID,
		Step:          1,
		Data:          StepData{"firstName": "Shanta"},
	})
	if err != nil {
		t.Fatalf("step 1 redo: %v", err)
	}

	if _, ok := redo.Steps["step1"]["phone"]; ok {
		t.Fatal("resubmitted step must replace the whole step payload")
	}
}

func TestSubmitStepUnknownApplication(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.SubmitStep(context.Background(), StepRequest{
		ApplicationID: "HH00000000",
		Step:          2,
		Data:          StepData{"city": "Pune"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmitStepRejectsOutOfRange(t *testing.T) {
	svc := newTestService(nil)

	if _, err := svc.SubmitStep(context.Background(), StepRequest{Step: 7, Data: StepData{}}); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}
}

func TestCompleteDerivesLeadFromApplicantStep(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := newTestService(recorder)

	app, err := svc.SubmitStep(context.Background(), StepRequest{
		Step: 1,
		Data: StepData{
			"firstName": "Shanta",
			"lastName":  "Deshpande",
			"email":     "shanta@example.com",
			"phone":     "9876543210",
		},
	})
	if err != nil {
		t.Fatalf("step 1: %v", err)
	}

	completed, lead, err := svc.Complete(context.Background(), app.ApplicationID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if completed.Status != StatusCompleted || completed.CompletedAt == nil {
		t.Fatalf("expected completed state, got status=%q completedAt=%v", completed.Status, completed.CompletedAt)
	}
	if lead.Name != "Shanta Deshpande" {
		t.Fatalf("expected concatenated name, got %q", lead.Name)
	}
	if lead.Priority != leads.PriorityHigh || lead.Source != leads.SourceOther {
		t.Fatalf("unexpected lead defaults: priority=%q source=%q", lead.Priority, lead.Source)
	}
	if len(recorder.recorded) != 1 {
		t.Fatalf("expected one recorded lead, got %d", len(recorder.recorded))
	}
	if lead.ID != "lead-1" {
		t.Fatalf("expected recorder-assigned id, got %q", lead.ID)
	}
}

func TestCompleteFallsBackToGuardianContact(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := newTestService(recorder)

	app, err := svc.SubmitStep(context.Background(), StepRequest{
		Step: 6,
		Data: StepData{
			"guardianEmail": "guardian@example.com",
			"guardianPhone": "9822334455",
		},
	})
	if err != nil {
		t.Fatalf("step 6: %v", err)
	}

	_, lead, err := svc.Complete(context.Background(), app.ApplicationID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if lead.Name != "Unknown" {
		t.Fatalf("expected Unknown name, got %q", lead.Name)
	}
	if lead.Email != "guardian@example.com" || lead.Phone != "9822334455" {
		t.Fatalf("expected guardian contact fallback, got email=%q phone=%q", lead.Email, lead.Phone)
	}
}

func TestCompleteFailsWhenLeadWriteFails(t *testing.T) {
	recorder := &fakeRecorder{recordErr: errors.New("write refused")}
	svc := newTestService(recorder)

	app, err := svc.SubmitStep(context.Background(), StepRequest{
		Step: 1,
		Data: StepData{"firstName": "Shanta", "email": "shanta@example.com"},
	})
	if err != nil {
		t.Fatalf("step 1: %v", err)
	}

	_, _, err = svc.Complete(context.Background(), app.ApplicationID)
	if err == nil {
		t.Fatal("expected the failed lead write to fail the completion")
	}
	if !errors.Is(err, recorder.recordErr) {
		t.Fatalf("expected wrapped recorder error, got %v", err)
	}
	if len(recorder.notified) != 0 {
		t.Fatal("no notification may be sent for an unsaved lead")
	}
}

func TestCompleteUnknownApplication(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := newTestService(recorder)

	if _, _, err := svc.Complete(context.Background(), "HH99999999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(recorder.recorded) != 0 {
		t.Fatal("no lead may be recorded for an unknown application")
	}
}

func TestAdminStatusReview(t *testing.T) {
	svc := newTestService(nil)

	app, err := svc.SubmitStep(context.Background(), StepRequest{Step: 1, Data: StepData{}})
	if err != nil {
		t.Fatalf("seed application: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), app.ApplicationID, "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "HH00000001", StatusApproved); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), app.ApplicationID, StatusUnderReview)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != StatusUnderReview {
		t.Fatalf("expected under_review, got %q", updated.Status)
	}

	items, total, err := svc.ListAdmin(context.Background(), StatusUnderReview, 20, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ApplicationID != app.ApplicationID {
		t.Fatalf("expected the reviewed application, got total=%d items=%d", total, len(items))
	}
}

func TestApplicationIDsAreUniqueWithinProcess(t *testing.T) {
	svc := newTestService(nil)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		app, err := svc.SubmitStep(context.Background(), StepRequest{Step: 1, Data: StepData{}})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if _, dup := seen[app.ApplicationID]; dup {
			t.Fatalf("duplicate application id %q", app.ApplicationID)
		}
		seen[app.ApplicationID] = struct{}{}
	}
}
