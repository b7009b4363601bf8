package services

import (
	"context"
	"errors"

	"tableflip.dev/vita/pkg/health"
	"tableflip.dev/vita/pkg/store"
)

// UserService owns user records and the current-user bookmark.
type UserService interface {
	CreateUser(ctx context.Context) (*health.User, error)
	Save(ctx context.Context, u *health.User) error
	Get(ctx context.Context, id string) (*health.User, error)
	FindByAccount(ctx context.Context, account health.ExternalAccount) (*health.User, error)
	CurrentUserID() (string, error)
	SetCurrentUserID(id string) error
}

// ResolveCurrentUser returns the bookmarked user, creating and bookmarking a
// fresh one when the bookmark is missing or stale. Same flow the app runs on
// launch.
func ResolveCurrentUser(ctx context.Context, svc UserService) (*health.User, error) {
	id, err := svc.CurrentUserID()
	if err != nil {
		return nil, err
	}
	if id != "" {
		if u, err := svc.Get(ctx, id); err == nil {
			return u, nil
		}
	}
	u, err := svc.CreateUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := svc.SetCurrentUserID(u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// NewUserService builds a UserService over the persistence layer.
func NewUserService(p store.Persistence) UserService {
	return &userService{p: p}
}

type userService struct {
	p store.Persistence
}

func (s *userService) CreateUser(ctx context.Context) (*health.User, error) {
	u := health.NewUser()
	if err := s.p.StoreUser(u); err != nil {
		return nil, wrap("create user", err)
	}
	return u, nil
}

func (s *userService) Save(ctx context.Context, u *health.User) error {
	if err := u.Validate(); err != nil {
		return invalid("save user", err)
	}
	if err := s.p.StoreUser(u); err != nil {
		return wrap("save user", err)
	}
	return nil
}

func (s *userService) Get(ctx context.Context, id string) (*health.User, error) {
	u, err := s.p.User(id)
	if err != nil {
		return nil, wrap("get user", err)
	}
	return u, nil
}

// FindByAccount returns the user linked to the external account, for
// restoring a journal on a new device.
func (s *userService) FindByAccount(ctx context.Context, account health.ExternalAccount) (*health.User, error) {
	if account.Provider == "" || account.AccountID == "" {
		return nil, invalid("find by account", errors.New("provider and account id required"))
	}
	for _, u := range s.p.Users(ctx) {
		if u.Account == nil {
			continue
		}
		if u.Account.Provider == account.Provider && u.Account.AccountID == account.AccountID {
			return u, nil
		}
	}
	return nil, notFound("find by account: " + account.Provider + "/" + account.AccountID)
}

func (s *userService) CurrentUserID() (string, error) {
	id, err := s.p.CurrentUserID()
	if err != nil {
		return "", wrap("read current user", err)
	}
	return id, nil
}

func (s *userService) SetCurrentUserID(id string) error {
	if err := s.p.SetCurrentUserID(id); err != nil {
		return wrap("set current user", err)
	}
	return nil
}
