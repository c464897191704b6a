package model

import (
	"time"

	"github.com/google/uuid"
)

// SocialAccountModel is the GORM mapping for linked social accounts.
// One row per (platform, external account), no matter which user linked it;
// relinking the same external account overwrites the row in place instead of
// leaving two live token records for one account.
type SocialAccountModel struct {
	ID                uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	Platform          string     `gorm:"column:platform;type:varchar(32);not null;uniqueIndex:uniq_platform_account,priority:1"`
	ExternalAccountID string     `gorm:"column:external_account_id;type:varchar(255);not null;uniqueIndex:uniq_platform_account,priority:2"`
	Username          string     `gorm:"column:username;type:varchar(255)"`
	ProfileURL        string     `gorm:"column:profile_url;type:text"`
	FollowerCount     int64      `gorm:"column:follower_count;not null;default:0"`
	AccessToken       string     `gorm:"column:access_token;type:text;not null"`
	RefreshToken      string     `gorm:"column:refresh_token;type:text"`
	TokenExpiry       *time.Time `gorm:"column:token_expiry"`
	LastSync          time.Time  `gorm:"column:last_sync;not null"`
	CreatedAt         time.Time  `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (SocialAccountModel) TableName() string {
	return "social_accounts"
}
