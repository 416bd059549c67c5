package admin

import (
	"errors"
	"time"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

var (
	ErrNotFound       = errors.New("admin not found")
	ErrBadCredentials = errors.New("invalid admin credentials")
)

type Admin struct {
	ID           uint64     `gorm:"primaryKey;column:id" json:"-"`
	AdminID      string     `gorm:"size:32;uniqueIndex" json:"admin_id"`
	Email        string     `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;size:100" json:"-"`
	Role         Role       `gorm:"type:enum('admin','superadmin');default:'admin'" json:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Admin) TableName() string { return "admins" }

// Action is an audit record of a decision an admin made. Details holds a
// small JSON blob describing the decision.
type Action struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	AdminID   string    `gorm:"size:32;index" json:"admin_id"`
	Action    string    `gorm:"size:64" json:"action"`
	TargetID  string    `gorm:"size:36;index" json:"target_id"`
	Details   string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Action) TableName() string { return "admin_actions" }
