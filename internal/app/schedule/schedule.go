// Package schedule splits show listings around a reference instant and
// formats their start times for display.
package schedule

import (
	"time"

	"fyyur/internal/models"
)

// StartTimeLayout renders start times as month/day/year with a 24-hour clock.
const StartTimeLayout = "01/02/2006, 15:04:05"

// Entry is a show as seen from one side of the booking: the counterpart's
// identity and the formatted start time.
type Entry struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImageLink string `json:"image_link"`
	StartTime string `json:"start_time"`
}

// Split holds the past and upcoming halves of a show list.
type Split struct {
	Past     []Entry `json:"past_shows"`
	Upcoming []Entry `json:"upcoming_shows"`
}

// IsUpcoming reports whether a show starting at start is still ahead of now.
func IsUpcoming(start, now time.Time) bool {
	return start.After(now)
}

// IsPast reports whether a show starting at start has already begun before now.
func IsPast(start, now time.Time) bool {
	return start.Before(now)
}

// Format renders t in loc using StartTimeLayout. A nil loc means UTC.
func Format(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(StartTimeLayout)
}

// Partition sorts listings into past and upcoming entries. A show starting
// exactly at now lands in neither list. toEntry picks the counterpart shown
// for each listing.
func Partition(listings []models.ShowListing, now time.Time, loc *time.Location, toEntry func(models.ShowListing) Entry) Split {
	split := Split{Past: make([]Entry, 0), Upcoming: make([]Entry, 0)}
	for _, l := range listings {
		switch {
		case IsPast(l.StartTime, now):
			e := toEntry(l)
			e.StartTime = Format(l.StartTime, loc)
			split.Past = append(split.Past, e)
		case IsUpcoming(l.StartTime, now):
			e := toEntry(l)
			e.StartTime = Format(l.StartTime, loc)
			split.Upcoming = append(split.Upcoming, e)
		}
	}
	return split
}

// ArtistSide presents a listing by its artist, for venue pages.
func ArtistSide(l models.ShowListing) Entry {
	return Entry{ID: l.ArtistID, Name: l.ArtistName, ImageLink: l.ArtistImageLink}
}

// VenueSide presents a listing by its venue, for artist pages.
func VenueSide(l models.ShowListing) Entry {
	return Entry{ID: l.VenueID, Name: l.VenueName, ImageLink: l.VenueImageLink}
}
