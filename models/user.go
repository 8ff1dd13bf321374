package models

import (
	"time"

	"github.com/lib/pq"
)

// User is a registered account. The Followers/Follows/Places columns are
// plain id arrays rather than join tables: the arrays keep insertion
// order and may hold the same id more than once, which follow/unfollow
// rely on.
type User struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"unique;not null" json:"email"`
	Password  string        `gorm:"not null" json:"-"` // Don't expose password in JSON
	Image     string        `gorm:"not null" json:"image"`
	Followers pq.Int64Array `gorm:"type:bigint[]" json:"followers"`
	Follows   pq.Int64Array `gorm:"type:bigint[]" json:"follows"`
	Places    pq.Int64Array `gorm:"type:bigint[]" json:"places"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
