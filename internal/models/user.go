// Package models contains data models for the rental service.
package models

import "time"

// Roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account holder. Credential fields never leave the service.
type User struct {
	ID                  string     `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	FullName            string     `json:"fullName" gorm:"not null" bson:"fullName"`
	Email               string     `json:"email" gorm:"uniqueIndex;not null" bson:"email"`
	PasswordHash        string     `json:"-" gorm:"not null" bson:"password"`
	Role                string     `json:"role" gorm:"not null" bson:"role"`
	ResetToken          *string    `json:"-" gorm:"index" bson:"resetPasswordToken"`
	ResetTokenExpiresAt *time.Time `json:"-" bson:"resetPasswordExpires"`

	ProfileImage   *string    `json:"profileImage" bson:"profileImage"`
	DateOfBirth    *time.Time `json:"dateofBirth" bson:"dateofBirth"`
	Gender         *string    `json:"gender" bson:"gender"`
	PhoneNumber    *string    `json:"phoneNumber" bson:"phoneNumber"`
	NIC            *string    `json:"nic" gorm:"column:nic" bson:"nic"`
	Address        *string    `json:"address" bson:"address"`
	Bio            *string    `json:"bio" bson:"bio"`
	TravelStyle    *string    `json:"travelstyle" bson:"travelstyle"`
	TravelBudget   *string    `json:"travelbudget" bson:"travelbudget"`
	TravelInterest *string    `json:"travelinterest" bson:"travelinterest"`

	CreatedOn time.Time `json:"createdOn" gorm:"autoCreateTime" bson:"createdOn"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime" bson:"updatedAt"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPendingReset reports whether an unexpired reset token is outstanding at now.
func (u *User) HasPendingReset(now time.Time) bool {
	return u.ResetToken != nil && u.ResetTokenExpiresAt != nil && now.Before(*u.ResetTokenExpiresAt)
}

// ProfileUpdate carries the user-editable profile fields. Nil fields are left unchanged.
// An empty dateofBirth clears the stored date.
type ProfileUpdate struct {
	FullName       *string `json:"fullName"`
	ProfileImage   *string `json:"profileImage"`
	DateOfBirth    *Date   `json:"dateofBirth" swaggertype:"string" example:"1990-05-01"`
	Gender         *string `json:"gender"`
	PhoneNumber    *string `json:"phoneNumber"`
	NIC            *string `json:"nic"`
	Address        *string `json:"address"`
	Bio            *string `json:"bio"`
	TravelStyle    *string `json:"travelstyle"`
	TravelBudget   *string `json:"travelbudget"`
	TravelInterest *string `json:"travelinterest"`
}

// Apply copies the set fields onto u.
func (p ProfileUpdate) Apply(u *User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.ProfileImage != nil {
		u.ProfileImage = p.ProfileImage
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = p.DateOfBirth.Ptr()
	}
	if p.Gender != nil {
		u.Gender = p.Gender
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = p.PhoneNumber
	}
	if p.NIC != nil {
		u.NIC = p.NIC
	}
	if p.Address != nil {
		u.Address = p.Address
	}
	if p.Bio != nil {
		u.Bio = p.Bio
	}
	if p.TravelStyle != nil {
		u.TravelStyle = p.TravelStyle
	}
	if p.TravelBudget != nil {
		u.TravelBudget = p.TravelBudget
	}
	if p.TravelInterest != nil {
		u.TravelInterest = p.TravelInterest
	}
}
