package model

import (
	"time"
)

type SubscriptionTier string

const (
	TierFree  SubscriptionTier = "free"
	TierPro   SubscriptionTier = "pro"
	TierElite SubscriptionTier = "elite"
)

// User is the durable account record. Email is stored lowercased; email and
// username uniqueness is enforced by the database, not by callers.
type User struct {
	ID               int64  `gorm:"primaryKey"`
	Email            string `gorm:"uniqueIndex;not null"`
	Username         string `gorm:"uniqueIndex;not null"`
	FullName         string
	PasswordHash     string `gorm:"column:hashed_password;not null"`
	IsActive         bool
	IsAdmin          bool
	SubscriptionTier SubscriptionTier `gorm:"default:free"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (User) TableName() string { return "users" }

type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	RefreshTokenJTI string
	User            User
}
