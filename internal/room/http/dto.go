package http

import (
	bookingHttp "github.com/advertomedia/room-booking-backend/internal/booking/http"
	"github.com/advertomedia/room-booking-backend/internal/room"
)

// StatusResponse reports the room's occupancy for display purposes.
type StatusResponse struct {
	IsAvailable bool                         `json:"is_available"`
	Current     *bookingHttp.BookingResponse `json:"current"`
	Next        *bookingHttp.BookingResponse `json:"next"`
	TodayCount  int                          `json:"today_count"`
}

func NewStatusResponse(st *room.Status) StatusResponse {
	resp := StatusResponse{
		IsAvailable: st.IsAvailable,
		TodayCount:  st.TodayCount,
	}
	if st.Current != nil {
		cur := bookingHttp.NewBookingResponse(st.Current)
		resp.Current = &cur
	}
	if st.Next != nil {
		next := bookingHttp.NewBookingResponse(st.Next)
		resp.Next = &next
	}
	return resp
}
