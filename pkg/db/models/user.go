package models

// User is the single durable record this service owns. The username doubles
// as the primary key, matching the original users table; email and mobile are
// independently unique so any of the three can act as a login identifier.
type User struct {
	Username     string `gorm:"primaryKey;column:username" json:"username"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Role         string `gorm:"column:role;not null" json:"role"`
	Email        string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Mobile       string `gorm:"column:mobile;uniqueIndex;not null" json:"mobile"`
}

// TableName pins the table name to the migration schema.
func (User) TableName() string {
	return "users"
}
