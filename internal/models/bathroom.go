package models

import (
	"time"

	"github.com/google/uuid"
)

// BathroomDB represents a bathroom record in the database.
// BathroomID and CreatedAt never change after creation; Approved only
// ever transitions false -> true.
type BathroomDB struct {
	BathroomID uuid.UUID `db:"bathroom_id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Address    string    `db:"address" json:"address"`
	Zip        string    `db:"zip" json:"zip"`
	Latitude   float64   `db:"latitude" json:"latitude"`
	Longitude  float64   `db:"longitude" json:"longitude"`
	Hours      string    `db:"hours" json:"hours"`
	Remarks    string    `db:"remarks" json:"remarks"`
	Approved   bool      `db:"approved" json:"approved"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// BathroomAttributes are the caller-supplied fields of a bathroom record.
type BathroomAttributes struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Zip       string  `json:"zip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Hours     string  `json:"hours"`
	Remarks   string  `json:"remarks"`
}

// BoundingBox is a rectangular lat/lon region defined by its top-left and
// bottom-right corners. Containment is a naive inclusive range test: no
// geodesic math, no wraparound at the antimeridian or poles.
type BoundingBox struct {
	TopLeftLat     float64 `json:"top_left_latitude"`
	TopLeftLon     float64 `json:"top_left_longitude"`
	BottomRightLat float64 `json:"bottom_right_latitude"`
	BottomRightLon float64 `json:"bottom_right_longitude"`
}
