package domain

import "errors"

var ErrMenuItemNotFound = errors.New("menu item not found")
var ErrInvalidFilename = errors.New("filename contains invalid path sequence")
var ErrStorageWrite = errors.New("could not store file")

// MenuItem is a single entry on the restaurant menu. Fields are stored
// exactly as submitted; there is no server-side validation of price or
// required fields.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}
