// Package model holds the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. Usernames carry a unique index
// so duplicate registration fails at the database even under concurrent
// requests.
type AccountModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username      string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Role          string    `gorm:"type:varchar(20);not null;default:'standard'"`
	ApprovalState string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// HistoryRecordModel mirrors the 'history_records' table. Records belong to
// exactly one account and cascade away with it; the composite index serves
// both per-account listing and the retention sweep's age cutoff.
type HistoryRecordModel struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID  uuid.UUID     `gorm:"type:uuid;not null;index:idx_history_account_created"`
	Account    *AccountModel `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
	PayloadRef string        `gorm:"type:text;not null"`
	ResultText string        `gorm:"type:text"`
	CreatedAt  time.Time     `gorm:"index:idx_history_account_created"`
}

// TableName explicitly sets the table name for GORM.
func (HistoryRecordModel) TableName() string {
	return "history_records"
}
