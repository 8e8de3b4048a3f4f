package models

import "time"

type User struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email            string `gorm:"unique;not null" json:"email"`
	Name             string `gorm:"not null" json:"nome"`
	PasswordHash     string `gorm:"not null" json:"-"`
	Verified         bool   `gorm:"default:false" json:"verificado"`
	VerificationCode string `json:"-"`
	AvatarURL        string `json:"avatar_url"`
	Developer        bool   `gorm:"default:false" json:"desenvolvedor"`

	CartItems []CartItem     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Wishlist  []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the shape returned by auth and admin endpoints. The password
// hash never leaves the server.
type PublicUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"nome"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
