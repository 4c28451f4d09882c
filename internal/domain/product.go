package domain

import "time"

type Product struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	BrandID    string    `json:"brandId"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	ImagePath  string    `json:"imagePath,omitempty"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
}
