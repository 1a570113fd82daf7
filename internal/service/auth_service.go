package service

import (
	"context"
	"time"

	"syncpos/internal/domain"
)

// AuthService is the demo credential check. Not real authentication: a fixed
// user table and a session object in the store, nothing more.
type AuthService struct {
	sessions SessionRepository
	now      func() time.Time
}

type demoUser struct {
	username string
	password string
	role     string
	shift    string
}

var demoUsers = []demoUser{
	{username: "admin", password: "admin123", role: "Manager", shift: "Full Day"},
	{username: "cashier", password: "cash123", role: "Cashier", shift: "Morning Shift"},
	{username: "ranjeet", password: "ranjeet123", role: "Cashier", shift: "Morning Shift"},
}

func NewAuthService(sessions SessionRepository) *AuthService {
	return &AuthService{sessions: sessions, now: time.Now}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	for _, candidate := range demoUsers {
		if candidate.username == username && candidate.password == password {
			user := domain.User{
				Username:  candidate.username,
				Role:      candidate.role,
				Shift:     candidate.shift,
				LoginTime: s.now().UTC(),
			}
			if err := s.sessions.SetUser(ctx, user); err != nil {
				return nil, err
			}
			return &user, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.ClearUser(ctx)
}

func (s *AuthService) Current(ctx context.Context) (*domain.User, error) {
	return s.sessions.CurrentUser(ctx)
}

var _ AuthServiceInterface = (*AuthService)(nil)
