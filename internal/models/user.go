package models

import "time"

// Role is a closed set: accounts are either admins or regular users.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUsers Role = "users"
)

// Session is the record handed to the browser after login. It is stored
// client-side as plain JSON under a fixed key and is never signed or
// expired; its presence alone is what the route guard checks.
type Session struct {
	Role      Role      `json:"role"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"ts"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
