package domain

import "errors"

// ErrPointNotFound reports a lookup for a point id with no matching row.
var ErrPointNotFound = errors.New("point not found")

type Item struct {
	ID    int64  `db:"id" json:"id"`
	Image string `db:"image" json:"image"`
	Title string `db:"title" json:"title"`
}

// ItemView is the /items response shape: the stored filename is replaced
// by a fully qualified image_url.
type ItemView struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

type Point struct {
	ID        int64   `db:"id" json:"id"`
	Image     string  `db:"image" json:"image"`
	Name      string  `db:"name" json:"name"`
	Email     string  `db:"email" json:"email"`
	Whatsapp  string  `db:"whatsapp" json:"whatsapp"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
	City      string  `db:"city" json:"city"`
	UF        string  `db:"uf" json:"uf"`
}

type PointView struct {
	Point
	ImageURL string `json:"image_url"`
}

type ItemTitle struct {
	Title string `db:"title" json:"title"`
}

// PointDetail is the /points/:id response: the point plus the titles of
// the item categories it accepts.
type PointDetail struct {
	Point PointView   `json:"point"`
	Items []ItemTitle `json:"items"`
}
