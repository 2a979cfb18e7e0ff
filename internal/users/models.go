package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "USER"
	RolePublisher Role = "PUBLISHER"
	RoleAdmin     Role = "ADMIN"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"` // hide in json
	Role      Role      `json:"role" gorm:"not null;default:'USER'"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`

	// Publishers selling as a registered organization pay the lower platform
	// commission at checkout.
	IsOrganization   bool   `json:"is_organization" gorm:"default:false"`
	OrganizationName string `json:"organization_name,omitempty" gorm:"size:255"`

	// Country the publisher is paid out in; resolves the payout currency.
	CountryCode string `json:"country_code" gorm:"size:2"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RolePublisher), string(RoleAdmin):
		return true
	default:
		return false
	}
}

func (User) TableName() string {
	return "users"
}
