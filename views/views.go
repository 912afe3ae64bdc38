// Package views computes the presentation data every calendar and list
// screen derives from the raw appointment collection. All functions are
// pure and recompute from scratch; the collection is a single salon's
// book and stays small.
package views

import (
	"sort"
	"time"

	"victorianails-backend/models"
	"victorianails-backend/utils"
)

// OnDay returns the appointments falling on the same local calendar day
// as the reference date.
func OnDay(list []models.Appointment, day time.Time) []models.Appointment {
	out := make([]models.Appointment, 0, len(list))
	for _, a := range list {
		if utils.SameDay(a.Date, day) {
			out = append(out, a)
		}
	}
	return out
}

// SortByTimeSlot orders a copy of the list ascending by the timeSlot
// label. Comparison is lexicographic, which is why slots must stay
// zero-padded: "9:00" would sort after "10:00".
func SortByTimeSlot(list []models.Appointment) []models.Appointment {
	out := append([]models.Appointment(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimeSlot < out[j].TimeSlot
	})
	return out
}

// BookingIndex maps each calendar-day key to the number of appointments
// on that day. Cancelled appointments still mark the calendar.
func BookingIndex(list []models.Appointment) map[string]int {
	index := make(map[string]int, len(list))
	for _, a := range list {
		index[utils.DayKey(a.Date)]++
	}
	return index
}

// DayRevenue sums the prices booked on the reference day, excluding
// cancelled appointments.
func DayRevenue(list []models.Appointment, day time.Time) float64 {
	var total float64
	for _, a := range OnDay(list, day) {
		if a.Status != models.StatusCancelled {
			total += a.Price
		}
	}
	return total
}

// CountByStatus counts appointments per status value.
func CountByStatus(list []models.Appointment) map[models.Status]int {
	counts := make(map[models.Status]int, 4)
	for _, a := range list {
		counts[a.Status]++
	}
	return counts
}

// DaySummary is the dashboard payload for one selected day.
type DaySummary struct {
	Date         string                `json:"date"`
	Appointments []models.Appointment  `json:"appointments"`
	DayCount     int                   `json:"dayCount"`
	DayRevenue   float64               `json:"dayRevenue"`
	TotalCount   int                   `json:"totalCount"`
	StatusCounts map[models.Status]int `json:"statusCounts"`
	BookedDays   map[string]int        `json:"bookedDays"`
}

// Summarize combines the day views into the overview the dashboard
// renders: the day's appointments in slot order, the day's revenue, and
// the whole-collection totals used by the calendar sidebar.
func Summarize(list []models.Appointment, day time.Time) DaySummary {
	dayList := SortByTimeSlot(OnDay(list, day))
	return DaySummary{
		Date:         utils.DayKey(day),
		Appointments: dayList,
		DayCount:     len(dayList),
		DayRevenue:   DayRevenue(list, day),
		TotalCount:   len(list),
		StatusCounts: CountByStatus(list),
		BookedDays:   BookingIndex(list),
	}
}
