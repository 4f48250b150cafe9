package domain

import "time"

type Parking struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	OwnerID      string    `gorm:"index" json:"owner_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PricePerHour int64     `json:"price_per_hour"` // cents
	Spaces       int32     `json:"spaces"`
	Country      string    `gorm:"index" json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	ImageURL     string    `json:"image_url"`
	Category     string    `gorm:"index" json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Favorite struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;uniqueIndex:idx_fav_user_parking" json:"user_id"`
	ParkingID string    `gorm:"uniqueIndex:idx_fav_user_parking" json:"parking_id"`
	CreatedAt time.Time `json:"created_at"`
}
