package leads

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestService(repo Repository) *Service {
	return NewService(repo, time.UTC, nil)
}

func TestSubmitInquiryDefaults(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(repo)

	lead, err := svc.SubmitInquiry(context.Background(), InquiryRequest{
		Name:    "Asha Kulkarni",
		Email:   "Asha@Example.com",
		Phone:   "+91 98765 43210",
		Message: "Looking for assisted living for my mother.",
	}, RequestMeta{IPAddress: "203.0.113.9", UserAgent: "test-agent"})
	if err != nil {
		t.Fatalf("submit inquiry: %v", err)
	}

	if lead.ID == "" {
		t.Fatal("expected generated id")
	}
	if lead.Email != "asha@example.com" {
		t.Fatalf("expected lowercased email, got %q", lead.Email)
	}
	if lead.Status != StatusNew || lead.Priority != PriorityMedium || lead.Source != SourceContactForm {
		t.Fatalf("unexpected defaults: status=%q priority=%q source=%q", lead.Status, lead.Priority, lead.Source)
	}
	if lead.ServiceInterested != "general" {
		t.Fatalf("expected general inquiry type, got %q", lead.ServiceInterested)
	}

	items, total, err := svc.ListAdmin(context.Background(), ListFilter{}, 20, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ID != lead.ID {
		t.Fatalf("expected stored lead in listing, got total=%d items=%d", total, len(items))
	}
}

func TestSubmitAppointmentParsesDateAndRaisesPriority(t *testing.T) {
	svc := newTestService(NewMemoryRepository())

	lead, err := svc.SubmitAppointment(context.Background(), AppointmentRequest{
		Name:          "Ravi Mehta",
		Email:         "ravi@example.com",
		Phone:         "9876543210",
		PreferredDate: "2026-09-15",
		PreferredTime: "11:30",
	}, RequestMeta{})
	if err != nil {
		t.Fatalf("submit appointment: %v", err)
	}

	if lead.Source != SourceAppointment || lead.Priority != PriorityHigh {
		t.Fatalf("unexpected source/priority: %q/%q", lead.Source, lead.Priority)
	}
	if lead.AppointmentDate == nil {
		t.Fatal("expected parsed appointment date")
	}
	if got := lead.AppointmentDate.Format("2006-01-02"); got != "2026-09-15" {
		t.Fatalf("unexpected appointment date %q", got)
	}
}

func TestSubmitContactDefaultsSubject(t *testing.T) {
	svc := newTestService(NewMemoryRepository())

	lead, err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:  "Meera Joshi",
		Email: "meera@example.com",
		Phone: "9876501234",
	}, RequestMeta{})
	if err != nil {
		t.Fatalf("submit contact: %v", err)
	}
	if lead.Subject != "General Inquiry" {
		t.Fatalf("expected default subject, got %q", lead.Subject)
	}
}

func TestSubmitVisitStartsPending(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(repo)

	visitor, err := svc.SubmitVisit(context.Background(), VisitRequest{
		Name:      "Suresh Patil",
		Phone:     "9822001122",
		Service:   "Assisted Living",
		VisitDate: "2026-09-20",
		VisitTime: "10:00",
	}, RequestMeta{})
	if err != nil {
		t.Fatalf("submit visit: %v", err)
	}
	if visitor.Status != VisitPending {
		t.Fatalf("expected pending status, got %q", visitor.Status)
	}

	items, total, err := svc.ListVisitorsAdmin(context.Background(), "", 20, 0)
	if err != nil {
		t.Fatalf("list visitors: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected one visitor, got total=%d items=%d", total, len(items))
	}
}

func TestRecordDerivedLeadFillsDefaults(t *testing.T) {
	svc := newTestService(NewMemoryRepository())

	lead, err := svc.RecordDerivedLead(context.Background(), Lead{
		Name:     "Unknown",
		Email:    "guardian@example.com",
		Phone:    "9876009876",
		Message:  "Admission application submitted. Application ID: HH12345678",
		Priority: PriorityHigh,
	})
	if err != nil {
		t.Fatalf("record derived lead: %v", err)
	}
	if lead.Source != SourceOther || lead.Status != StatusNew || lead.Priority != PriorityHigh {
		t.Fatalf("unexpected derived lead: source=%q status=%q priority=%q", lead.Source, lead.Status, lead.Priority)
	}
}

func TestListAdminRejectsUnknownFilters(t *testing.T) {
	svc := newTestService(NewMemoryRepository())

	if _, _, err := svc.ListAdmin(context.Background(), ListFilter{Status: "archived"}, 20, 0); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, _, err := svc.ListAdmin(context.Background(), ListFilter{Source: "billboard"}, 20, 0); !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
}

func TestUpdateAdmin(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(repo)

	lead, err := svc.SubmitInquiry(context.Background(), InquiryRequest{
		Name:  "Asha Kulkarni",
		Email: "asha@example.com",
		Phone: "9876543210",
	}, RequestMeta{})
	if err != nil {
		t.Fatalf("seed lead: %v", err)
	}

	if _, err := svc.UpdateAdmin(context.Background(), lead.ID, AdminUpdateRequest{}); !errors.Is(err, ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
	if _, err := svc.UpdateAdmin(context.Background(), lead.ID, AdminUpdateRequest{Status: "archived"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateAdmin(context.Background(), "missing", AdminUpdateRequest{Status: StatusContacted}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	updated, err := svc.UpdateAdmin(context.Background(), lead.ID, AdminUpdateRequest{
		Status:   StatusContacted,
		Priority: PriorityUrgent,
		Notes:    "Called back, family visiting Saturday.",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusContacted || updated.Priority != PriorityUrgent {
		t.Fatalf("unexpected update result: status=%q priority=%q", updated.Status, updated.Priority)
	}
	if len(updated.Notes) != 1 || updated.Notes[0].AddedBy != "Admin" {
		t.Fatalf("expected one admin note, got %+v", updated.Notes)
	}
}

func TestMemoryRepositoryPagination(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(repo)

	for i := 0; i < 5; i++ {
		if _, err := svc.SubmitContact(context.Background(), ContactRequest{
			Name:  "Visitor",
			Email: "visitor@example.com",
			Phone: "9876543210",
		}, RequestMeta{}); err != nil {
			t.Fatalf("seed lead %d: %v", i, err)
		}
	}

	items, total, err := svc.ListAdmin(context.Background(), ListFilter{}, 2, 4)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(items) != 1 {
		t.Fatalf("expected final page of 1, got %d", len(items))
	}
}
