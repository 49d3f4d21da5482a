package models

import "time"

// Venue represents a location that hosts performances.
type Venue struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	Website            string    `json:"website"`
	FacebookLink       string    `json:"facebook_link"`
	ImageLink          string    `json:"image_link"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description,omitempty"` // Only set when SeekingTalent
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Artist represents a performer who can be booked at venues.
type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	Website            string    `json:"website"`
	FacebookLink       string    `json:"facebook_link"`
	ImageLink          string    `json:"image_link"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description,omitempty"` // Only set when SeekingVenue
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Summary is a venue or artist with its upcoming show count.
type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Ref identifies a venue or artist by id and name.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
