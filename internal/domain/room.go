package domain

import "time"

type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Color     string    `json:"color"`
	StaffOnly bool      `json:"staff_only"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
