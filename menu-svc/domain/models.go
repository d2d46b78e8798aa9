package domain

import "time"

type AddOn struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	AddOns      []AddOn   `json:"add_ons"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}
