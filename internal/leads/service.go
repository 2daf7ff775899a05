package leads

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidSource   = errors.New("invalid source")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrEmptyUpdate     = errors.New("nothing to update")
)

type Notifier interface {
	SendLeadNotification(ctx context.Context, lead Lead, kind string) error
	SendLeadAutoReply(ctx context.Context, lead Lead) error
	SendVisitNotification(ctx context.Context, visitor Visitor) error
}

type Service struct {
	repo     Repository
	location *time.Location
	notifier Notifier
}

func NewService(repo Repository, location *time.Location, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		location: location,
		notifier: notifier,
	}
}

func (s *Service) SubmitInquiry(ctx context.Context, req InquiryRequest, meta RequestMeta) (Lead, error) {
	interested := strings.TrimSpace(req.InquiryType)
	if interested == "" {
		interested = "general"
	}

	now := time.Now().In(s.location)
	lead := Lead{
		Name:              strings.TrimSpace(req.Name),
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:             strings.TrimSpace(req.Phone),
		Message:           strings.TrimSpace(req.Message),
		Source:            SourceContactForm,
		ServiceInterested: interested,
		Status:            StatusNew,
		Priority:          PriorityMedium,
		IPAddress:         meta.IPAddress,
		UserAgent:         meta.UserAgent,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.CreateLead(ctx, &lead); err != nil {
		return Lead{}, err
	}
	return lead, nil
}

func (s *Service) SubmitAppointment(ctx context.Context, req AppointmentRequest, meta RequestMeta) (Lead, error) {
	now := time.Now().In(s.location)
	lead := Lead{
		Name:              strings.TrimSpace(req.Name),
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:             strings.TrimSpace(req.Phone),
		Message:           strings.TrimSpace(req.Message),
		Source:            SourceAppointment,
		ServiceInterested: strings.TrimSpace(req.ServiceInterested),
		AppointmentTime:   strings.TrimSpace(req.PreferredTime),
		Status:            StatusNew,
		Priority:          PriorityHigh,
		IPAddress:         meta.IPAddress,
		UserAgent:         meta.UserAgent,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if date := strings.TrimSpace(req.PreferredDate); date != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", date, s.location); err == nil {
			lead.AppointmentDate = &parsed
		}
	}

	if err := s.repo.CreateLead(ctx, &lead); err != nil {
		return Lead{}, err
	}
	return lead, nil
}

func (s *Service) SubmitContact(ctx context.Context, req ContactRequest, meta RequestMeta) (Lead, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "General Inquiry"
	}

	now := time.Now().In(s.location)
	lead := Lead{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   subject,
		Message:   strings.TrimSpace(req.Message),
		Source:    SourceContactForm,
		Status:    StatusNew,
		Priority:  PriorityMedium,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateLead(ctx, &lead); err != nil {
		return Lead{}, err
	}
	return lead, nil
}

func (s *Service) SubmitVisit(ctx context.Context, req VisitRequest, meta RequestMeta) (Visitor, error) {
	now := time.Now().In(s.location)
	visitor := Visitor{
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Service:   strings.TrimSpace(req.Service),
		VisitDate: strings.TrimSpace(req.VisitDate),
		VisitTime: strings.TrimSpace(req.VisitTime),
		Status:    VisitPending,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateVisitor(ctx, &visitor); err != nil {
		return Visitor{}, err
	}
	return visitor, nil
}

// RecordDerivedLead persists a lead synthesized by another pipeline, for
// example a completed admission application.
func (s *Service) RecordDerivedLead(ctx context.Context, lead Lead) (Lead, error) {
	now := time.Now().In(s.location)
	if lead.Source == "" {
		lead.Source = SourceOther
	}
	if lead.Status == "" {
		lead.Status = StatusNew
	}
	if lead.Priority == "" {
		lead.Priority = PriorityMedium
	}
	lead.CreatedAt = now
	lead.UpdatedAt = now

	if err := s.repo.CreateLead(ctx, &lead); err != nil {
		return Lead{}, err
	}
	return lead, nil
}

func (s *Service) ListAdmin(ctx context.Context, filter ListFilter, limit, offset int64) ([]Lead, int64, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	filter.Source = strings.ToLower(strings.TrimSpace(filter.Source))

	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, 0, ErrInvalidStatus
	}
	if filter.Source != "" && !IsValidSource(filter.Source) {
		return nil, 0, ErrInvalidSource
	}

	items, err := s.repo.ListLeads(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountLeads(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) ListVisitorsAdmin(ctx context.Context, status string, limit, offset int64) ([]Visitor, int64, error) {
	status = strings.ToLower(strings.TrimSpace(status))

	items, err := s.repo.ListVisitors(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountVisitors(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) UpdateAdmin(ctx context.Context, id string, req AdminUpdateRequest) (Lead, error) {
	id = strings.TrimSpace(id)
	status := strings.ToLower(strings.TrimSpace(req.Status))
	priority := strings.ToLower(strings.TrimSpace(req.Priority))
	noteText := strings.TrimSpace(req.Notes)

	if status == "" && priority == "" && noteText == "" {
		return Lead{}, ErrEmptyUpdate
	}
	if status != "" && !IsValidStatus(status) {
		return Lead{}, ErrInvalidStatus
	}
	if priority != "" && !IsValidPriority(priority) {
		return Lead{}, ErrInvalidPriority
	}

	now := time.Now().In(s.location)
	var note *Note
	if noteText != "" {
		note = &Note{Text: noteText, AddedBy: "Admin", AddedAt: now}
	}

	return s.repo.UpdateLead(ctx, id, status, priority, note, now)
}

func (s *Service) NotifyLead(ctx context.Context, lead Lead, kind string) error {
	if s.notifier == nil {
		return nil
	}
	return s.notifier.SendLeadNotification(ctx, lead, kind)
}

func (s *Service) NotifyAutoReply(ctx context.Context, lead Lead) error {
	if s.notifier == nil {
		return nil
	}
	if strings.TrimSpace(lead.Email) == "" {
		return nil
	}
	return s.notifier.SendLeadAutoReply(ctx, lead)
}

func (s *Service) NotifyVisit(ctx context.Context, visitor Visitor) error {
	if s.notifier == nil {
		return nil
	}
	return s.notifier.SendVisitNotification(ctx, visitor)
}
