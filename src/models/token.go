package models

import (
	"time"
)

// Token is a revoked session token, keyed by its jti claim.
type Token struct {
	ID        string    `gorm:"primarykey;size:36" json:"-"`
	UserID    uint      `gorm:"index" json:"-"`
	ExpiresAt time.Time `gorm:"index" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}
