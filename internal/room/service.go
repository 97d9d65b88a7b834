package room

import (
	"context"

	"github.com/advertomedia/room-booking-backend/internal/booking"
)

// Status is the room's occupancy at a moment in time. Current is nil when
// the room is free; Next is nil when nothing else is scheduled today.
type Status struct {
	IsAvailable bool
	Current     *booking.Booking
	Next        *booking.Booking
	TodayCount  int
}

type Service interface {
	// Status derives the occupancy for the given wall-clock moment. The
	// result holds no state and is re-derived on every call.
	Status(ctx context.Context, today, now string) (*Status, error)
}

type service struct {
	bookingService booking.Service
}

func NewService(bookingService booking.Service) Service {
	return &service{bookingService: bookingService}
}

func (s *service) Status(ctx context.Context, today, now string) (*Status, error) {
	todays, err := s.bookingService.DaySchedule(ctx, today)
	if err != nil {
		return nil, err
	}

	current, next := booking.ResolveStatus(now, todays)

	count := 0
	for _, b := range todays {
		if b.Status != booking.StatusCancelled {
			count++
		}
	}

	return &Status{
		IsAvailable: current == nil,
		Current:     current,
		Next:        next,
		TodayCount:  count,
	}, nil
}
