package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailInUse = errors.New("email already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrEmployeeRefRequired = errors.New("staff account requires an employee id")
var ErrEmployeeRefForbidden = errors.New("admin account must not carry an employee id")
var ErrInvalidRole = errors.New("role must be admin or staff")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token invalid")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// User models a login account. EmployeeID is set exactly when Role is staff:
// staff accounts act on behalf of one salon employee, admin accounts do not.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	EmployeeID   string    `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Principal is the authenticated identity rebuilt from a verified token and
// attached to the request context. It lives for one request only.
type Principal struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
}
