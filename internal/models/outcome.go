package models

// Outcome reports the result of a create, edit or delete to the user.
type Outcome struct {
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message"`
}
