package models

import "time"

// DateLayout is the calendar date format used by rental start and end dates.
const DateLayout = "2006-01-02"

// Rental is a booking of one car between two calendar dates.
type Rental struct {
	// ID is the rental identifier echoed in the result.
	ID int64

	// CarID references Car.ID.
	CarID int64

	// StartDate is the first day of the rental (midnight UTC).
	StartDate time.Time

	// EndDate is the last day of the rental, inclusive (midnight UTC).
	EndDate time.Time

	// Distance is the number of kilometers driven.
	Distance int64
}

// Days returns the rental duration counting both endpoints.
// A value below 1 means the end date precedes the start date.
func (r Rental) Days() int {
	start := truncateToDate(r.StartDate)
	end := truncateToDate(r.EndDate)
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// truncateToDate drops the clock part so that DST or offsets never shift the
// day count.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
