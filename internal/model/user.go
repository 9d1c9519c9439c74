package model

// User is an archive account. The primary key is the email exactly as the
// user typed it at registration (case-sensitive, no normalization).
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func (User) TableName() string { return "users" }
