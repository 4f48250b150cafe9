package domain

import "time"

type Reservation struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ParkingID string    `gorm:"index" json:"parking_id"`
	UserID    string    `gorm:"index" json:"user_id"`
	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `gorm:"index" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartTime, End: r.EndTime}
}
