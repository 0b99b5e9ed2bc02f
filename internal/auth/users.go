// Package auth holds the mock identity layer: a hardcoded credential list,
// per-client session state persisted through the key-value port, and the
// scs-backed HTTP session plumbing. There is deliberately no security model
// here; passwords are compared in plaintext against an in-memory list.
package auth

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleSubAdmin = "sub-admin"
)

// User is the profile visible to the rest of the system. Passwords live
// only in the registry's credential records and are never serialized.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Anniversary string `json:"anniversary,omitempty"`
}

// IsAdmin reports whether the user may access the admin console.
// Sub-admins count.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSubAdmin
}

type credential struct {
	User
	Password string
}

// Registry is the in-memory mock user list. Registration appends to it;
// nothing about it survives a process restart except the logged-in
// profile each client's session store persists separately.
type Registry struct {
	mu    sync.Mutex
	users []credential
}

// NewRegistry seeds the demo credential list.
func NewRegistry() *Registry {
	return &Registry{users: []credential{
		{
			User: User{
				ID:    "1",
				Name:  "Admin User",
				Email: "admin@meerajewels.com",
				Role:  RoleAdmin,
			},
			Password: "admin123",
		},
		{
			User: User{
				ID:          "2",
				Name:        "John Doe",
				Email:       "john@example.com",
				Role:        RoleCustomer,
				Phone:       "+91 9876543210",
				DateOfBirth: "1990-05-15",
			},
			Password: "password123",
		},
	}}
}

// Authenticate scans the list for a matching email and password.
func (r *Registry) Authenticate(email, password string) (*User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) && r.users[i].Password == password {
			u := r.users[i].User
			return &u, true
		}
	}
	return nil, false
}

// RegisterInput is the self-service signup form. Role is never accepted
// from the caller; registrations are always customers.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	DateOfBirth string
	Anniversary string
}

// Register appends a new customer to the list. It fails only when the
// email is already taken.
func (r *Registry) Register(in RegisterInput) (*User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, in.Email) {
			return nil, false
		}
	}
	u := User{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Role:        RoleCustomer,
		Phone:       in.Phone,
		DateOfBirth: in.DateOfBirth,
		Anniversary: in.Anniversary,
	}
	r.users = append(r.users, credential{User: u, Password: in.Password})
	out := u
	return &out, true
}
