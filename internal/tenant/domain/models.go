// Package domain contains persistence models for users and businesses.
package domain

import (
	"time"
)

// User owns businesses and chat history.
type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Businesses  []Business    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ChatHistory []ChatHistory `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// Business belongs to a user and owns invoices.
type Business struct {
	ID               string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID           string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	VATNumber        *string   `gorm:"type:varchar(20)" json:"vat_number"`
	Industry         *string   `gorm:"type:varchar(100)" json:"industry"`
	RegistrationDate time.Time `gorm:"not null" json:"registration_date"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
}

// TableName sets the database table name.
func (Business) TableName() string { return "businesses" }

// ChatHistory records one chat interaction for a user.
type ChatHistory struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	UsedVoice bool      `gorm:"not null;default:false" json:"used_voice"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// TableName sets the database table name.
func (ChatHistory) TableName() string { return "chat_history" }
