package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:255;not null" json:"name"`
	Reference string `gorm:"size:255;not null" json:"reference"`

	CategoryID uint              `gorm:"not null;index" json:"category_id"`
	Category   *CustomerCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category,omitempty"`

	StartDate   Date   `gorm:"type:date;not null" json:"start_date"`
	Description string `gorm:"type:text" json:"description"`

	Contacts []Contact `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
