package model

// User owns tasks. Usernames are not unique; lookups take the first match.
// Passwords are stored and served in clear text, which is part of the wire
// contract of this API.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Password string `gorm:"not null" json:"password"`
	Tasks    []Task `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// AsMap returns every column of the user row, keyed by column name.
func (u *User) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
		"password": u.Password,
	}
}
