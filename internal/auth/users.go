package auth

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Role gates access to the API.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleViewer Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleViewer:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")

type User struct {
	Username     string
	Role         Role
	passwordHash []byte
}

// UserStore keeps bcrypt password hashes for the service accounts.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*User)}
}

// NewSeededUserStore registers admin, staff and viewer accounts. An empty
// password leaves that account out.
func NewSeededUserStore(adminPassword, staffPassword, viewerPassword string) (*UserStore, error) {
	store := NewUserStore()
	seeds := []struct {
		username string
		password string
		role     Role
	}{
		{"admin", adminPassword, RoleAdmin},
		{"staff", staffPassword, RoleStaff},
		{"viewer", viewerPassword, RoleViewer},
	}
	for _, seed := range seeds {
		if seed.password == "" {
			continue
		}
		if err := store.Add(seed.username, seed.password, seed.role); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func (s *UserStore) Add(username, password string, role Role) error {
	if !role.Valid() {
		return errors.New("unknown role: " + string(role))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = &User{Username: username, Role: role, passwordHash: hash}
	return nil
}

// Authenticate returns the user when the password matches its hash.
func (s *UserStore) Authenticate(username, password string) (*User, error) {
	s.mu.RLock()
	user, exists := s.users[username]
	s.mu.RUnlock()
	if !exists {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
