package models

import (
	"time"
	"trimz-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleCustomer    = "customer"
	RoleHairdresser = "hairdresser"
)

// Person holds the fields shared by customers and hairdressers.
// It is embedded, not a table of its own.
type Person struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone       string    `json:"phone"`
	Avatar      string    `json:"avatar"`
	Rating      float64   `gorm:"type:decimal(2,1);default:0.0" json:"rating"`
	ReviewCount int       `gorm:"default:0" json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type User struct {
	ID       string `gorm:"primaryKey"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`
	Phone    string

	Role string `gorm:"type:varchar(20);not null"` // 'customer' or 'hairdresser'

	// PersonID links the account to its Customer or Hairdresser row.
	PersonID string `gorm:"index;not null"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize ID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
