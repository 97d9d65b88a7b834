package booking

import "sort"

// This file holds the pure scheduling rules. Every function takes the clock
// ("today"/"now" strings) and the booking set as explicit inputs, owns no
// state, and is safe to call repeatedly. Cancelled bookings never count: they
// hold no room time (see DESIGN.md for the rationale).

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// share actual duration. Back-to-back slots, where one ends exactly when the
// other starts, do not overlap.
func Overlaps(s1, e1, s2, e2 string) bool {
	return s1 < e2 && e1 > s2
}

// HasConflict reports whether the candidate interval [start,end) overlaps any
// non-cancelled booking in existing. The caller supplies the set already
// filtered to the candidate's date. excludeID skips the booking under edit so
// it does not conflict with itself; pass "" when creating.
func HasConflict(start, end string, existing []*Booking, excludeID string) bool {
	for _, b := range existing {
		if b.Status == StatusCancelled {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// ResolveStatus derives the room's occupancy from today's bookings.
//
// current is the first booking (in encounter order) whose interval contains
// now inclusively on both ends: start <= now <= end. This deviates from the
// half-open conflict rule on purpose, so the room still shows occupied at the
// exact minute a meeting ends. next is the booking with the smallest start
// time strictly after now, ties resolved by input order.
func ResolveStatus(now string, today []*Booking) (current, next *Booking) {
	for _, b := range today {
		if b.Status == StatusCancelled {
			continue
		}
		if current == nil && b.StartTime <= now && now <= b.EndTime {
			current = b
		}
		if b.StartTime > now && (next == nil || b.StartTime < next.StartTime) {
			next = b
		}
	}
	return current, next
}

// SelectUpcoming returns at most limit bookings that have not started yet,
// ordered by (date, start time) ascending. A booking qualifies if it is on a
// later date, or later today; one currently in progress is not upcoming.
func SelectUpcoming(today, now string, all []*Booking, limit int) []*Booking {
	upcoming := make([]*Booking, 0, len(all))
	for _, b := range all {
		if b.Status == StatusCancelled {
			continue
		}
		if b.Date > today || (b.Date == today && b.StartTime > now) {
			upcoming = append(upcoming, b)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].StartTime < upcoming[j].StartTime
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// BookedDates returns the sorted distinct dates that have at least one
// non-cancelled booking. The calendar uses it to highlight busy days.
func BookedDates(all []*Booking) []string {
	seen := make(map[string]struct{})
	dates := make([]string, 0)
	for _, b := range all {
		if b.Status == StatusCancelled {
			continue
		}
		if _, ok := seen[b.Date]; ok {
			continue
		}
		seen[b.Date] = struct{}{}
		dates = append(dates, b.Date)
	}
	sort.Strings(dates)
	return dates
}
