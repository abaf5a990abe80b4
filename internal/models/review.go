package models

import "time"

// Review is a customer-submitted rating and comment shown on the public
// site. Reviews are immutable after creation; the only mutation is a
// hard delete by an admin, so there is no soft-delete column.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Rating    int       `gorm:"not null" json:"rating"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }
