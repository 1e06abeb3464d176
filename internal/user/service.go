package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyName = errors.New("name is required")

type Service interface {
	Login(ctx context.Context, name string) (*User, bool, error)
	Profile(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, id int64, name, language, profileInfo string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Login finds the user by name or creates it on first sight. The second
// return value reports whether a new account was created.
func (s *service) Login(ctx context.Context, name string) (*User, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrEmptyName
	}

	u, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("looking up user: %w", err)
	}

	u, err = s.repo.Create(ctx, name)
	if err != nil {
		// A concurrent login won the insert; the existing row is the answer.
		if errors.Is(err, ErrNameTaken) {
			u, err = s.repo.FindByName(ctx, name)
			if err != nil {
				return nil, false, fmt.Errorf("resolving login race: %w", err)
			}
			return u, false, nil
		}
		return nil, false, fmt.Errorf("creating user: %w", err)
	}
	return u, true, nil
}

func (s *service) Profile(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id int64, name, language, profileInfo string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return s.repo.Update(ctx, id, name, language, profileInfo)
}
