package booking

import (
	"context"
	"strings"
)

type CreateRequest struct {
	UserID       string
	Title        string
	Organizer    string
	Date         string
	StartTime    string
	EndTime      string
	Participants []string
	Description  string
}

// UpdateRequest carries the editable fields of a booking. Pointers
// distinguish "field not sent" from "field sent as empty".
type UpdateRequest struct {
	Title        *string
	Organizer    *string
	Date         *string
	StartTime    *string
	EndTime      *string
	Participants *[]string
	Description  *string
	Status       *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string) (*Booking, error)
	Delete(ctx context.Context, id string, deleterUserID string) error

	// DaySchedule returns every booking on the given date ordered by start
	// time, cancelled ones included.
	DaySchedule(ctx context.Context, date string) ([]*Booking, error)
	// Upcoming returns at most limit bookings that start after (today, now),
	// ordered by (date, start time).
	Upcoming(ctx context.Context, today, now string, limit int) ([]*Booking, error)
	// BookedDates returns the sorted distinct dates that have bookings.
	BookedDates(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	organizer := strings.TrimSpace(req.Organizer)
	if organizer == "" {
		return nil, ErrOrganizerRequired
	}
	// Reject degenerate and inverted intervals before the overlap check; a
	// zero-length slot has no usable meaning.
	if req.StartTime >= req.EndTime {
		return nil, ErrInvalidTimeRange
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, req.Date, req.StartTime, req.EndTime, "")
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		UserID:       req.UserID,
		Title:        title,
		Organizer:    organizer,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Participants: cleanParticipants(req.Participants),
		Description:  strings.TrimSpace(req.Description),
		Status:       StatusConfirmed,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only the owning user may edit a booking.
	if b.UserID != updaterUserID {
		return nil, ErrPermissionDenied
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		b.Title = title
	}
	if req.Organizer != nil {
		organizer := strings.TrimSpace(*req.Organizer)
		if organizer == "" {
			return nil, ErrOrganizerRequired
		}
		b.Organizer = organizer
	}
	if req.Participants != nil {
		b.Participants = cleanParticipants(*req.Participants)
	}
	if req.Description != nil {
		b.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		st := Status(*req.Status)
		if st != StatusPending && st != StatusConfirmed && st != StatusCancelled {
			return nil, ErrInvalidStatus
		}
		b.Status = st
	}

	newDate := b.Date
	newStart := b.StartTime
	newEnd := b.EndTime
	slotChanged := false

	if req.Date != nil {
		newDate = *req.Date
		slotChanged = true
	}
	if req.StartTime != nil {
		newStart = *req.StartTime
		slotChanged = true
	}
	if req.EndTime != nil {
		newEnd = *req.EndTime
		slotChanged = true
	}

	if slotChanged {
		if newStart >= newEnd {
			return nil, ErrInvalidTimeRange
		}

		// Re-apply the conflict rule, excluding the booking under edit from
		// the comparison set.
		hasOverlap, err := s.repo.HasOverlap(ctx, newDate, newStart, newEnd, b.ID)
		if err != nil {
			return nil, err
		}
		if hasOverlap {
			return nil, ErrTimeConflict
		}
		b.Date = newDate
		b.StartTime = newStart
		b.EndTime = newEnd
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterUserID string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.UserID != deleterUserID {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) DaySchedule(ctx context.Context, date string) ([]*Booking, error) {
	return s.repo.ListByDate(ctx, date)
}

func (s *service) Upcoming(ctx context.Context, today, now string, limit int) ([]*Booking, error) {
	all, err := s.repo.ListFromDate(ctx, today)
	if err != nil {
		return nil, err
	}
	return SelectUpcoming(today, now, all, limit), nil
}

func (s *service) BookedDates(ctx context.Context) ([]string, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return BookedDates(all), nil
}

// cleanParticipants drops blank entries, matching the submission form which
// keeps empty rows around while editing.
func cleanParticipants(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
