package models

// User represents a user account.
type User struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	Name         string `bson:"name" json:"name"`
	PasswordHash string `bson:"password_hash" json:"-"` // Never serialize password hash
	CreatedAt    string `bson:"created_at" json:"created_at"`
}

// Public returns the fields safe to hand back to the client.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"name":       u.Name,
		"created_at": u.CreatedAt,
	}
}
