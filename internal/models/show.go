package models

import "time"

// Show is a scheduled performance linking one artist to one venue.
type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
	CreatedAt time.Time `json:"created_at"`
}

// ShowListing is a show joined with its venue and artist details.
type ShowListing struct {
	ID              int64
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}
