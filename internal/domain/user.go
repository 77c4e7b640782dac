package domain

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleTester          Role = "tester"
	RoleJuniorDeveloper Role = "junior_developer"
	RoleSeniorDeveloper Role = "senior_developer"
	RoleManager         Role = "manager"
)

// ParseRole normalizes a stored role string ("Senior Developer",
// "senior_developer") into a Role constant.
func ParseRole(s string) (Role, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	switch Role(normalized) {
	case RoleTester, RoleJuniorDeveloper, RoleSeniorDeveloper, RoleManager:
		return Role(normalized), nil
	}
	return "", fmt.Errorf("bilinmeyen rol: %q", s)
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) Clone() *User {
	clone := *u
	return &clone
}

type UserRepository interface {
	FindAll() ([]*User, error)
	FindByID(id int64) (*User, error)
	FindByUsername(username string) (*User, error)
	Create(user *User) error
	Update(user *User) error
	Delete(id int64) error
	// Restore writes a snapshot back whole, keeping its original identity.
	Restore(user *User) error
}

type UserService interface {
	ListUsers() ([]*User, error)
	GetUser(id int64) (*User, error)
	CreateUser(user *User, password string) error
	UpdateUser(user *User, newPassword string) error
	DeleteUser(id int64) error
	RestoreUser(user *User) error
}

type AuthService interface {
	Login(username, password string) (*User, error)
	ChangePassword(userID int64, newPassword string) error
}

// PasswordHasher is the credential boundary; plaintext passwords never
// cross it in the other direction.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
