package models

// User represents a registered account
type User struct {
	ID       string `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	Email    string `gorm:"column:email;uniqueIndex;not null"` // duplicate detection is case-insensitive, checked before insert
	Phone    string `gorm:"column:phone"`
	Password string `gorm:"column:password;not null"` // bcrypt hash
}

// UserRow is the row shape surfaced by user search and follower listings
type UserRow struct {
	ID   string
	Name string
}

// RegisterRequest defines the fields collected during account creation
type RegisterRequest struct {
	Name     string `validate:"required,max=49"`
	Email    string `validate:"required,min=3,max=50,email"`
	Phone    string `validate:"required,number,max=14"`
	Password string `validate:"required,max=19"`
}
