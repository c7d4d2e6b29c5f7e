package models

import "time"

// Owner is the single admin account of the shop.
type Owner struct {
	UserID    string    `json:"userId" bson:"userid"`
	Username  string    `json:"username" bson:"username"`
	Password  string    `json:"-" bson:"password"` // bcrypt hash
	LastLogin time.Time `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
}
