package models

import "time"

type Contact struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:255;not null" json:"first_name"`
	LastName  string `gorm:"size:255" json:"last_name"`

	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
