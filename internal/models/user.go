package models

import "time"

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Phone        string   `gorm:"type:varchar(11)" json:"phone,omitempty"`
	Role         UserRole `gorm:"type:varchar(10);not null;default:'student'" json:"role"`
	Avatar       string   `json:"avatar,omitempty"`

	// Relations
	PublishedJobs []Job          `gorm:"foreignKey:PublisherID" json:"-"`
	Applications  []Application  `gorm:"foreignKey:ApplicantID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
