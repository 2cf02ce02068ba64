package models

// User represents a single record held in the user registry.
// Password is stored and returned as given; nothing hashes it.
type User struct {
	Username    string `json:"username" mapstructure:"username"`
	DisplayName string `json:"displayName" mapstructure:"displayName"`
	Password    string `json:"password" mapstructure:"password"`
}

// NewUser creates a new User instance with the given fields.
// Note: No validation is performed here.
func NewUser(username, displayName, password string) *User {
	return &User{
		Username:    username,
		DisplayName: displayName,
		Password:    password,
	}
}
