package entities

import "time"

type Item struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	Name          string     `gorm:"not null" json:"name"`
	Category      *string    `json:"category,omitempty"`
	Quantity      *string    `json:"quantity,omitempty"`
	ExpiryDate    time.Time  `gorm:"not null" json:"expiry_date"`
	IsShareable   bool       `gorm:"not null;default:false" json:"is_shareable"`
	SharedGroupID *uint      `json:"shared_group_id,omitempty"`
	ClaimedBy     *uint      `json:"claimed_by,omitempty"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`

	User        *User  `gorm:"foreignKey:UserID" json:"-"`
	SharedGroup *Group `gorm:"foreignKey:SharedGroupID" json:"-"`
	Timestamp
}
