package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/ratelimit"
)

type UserService struct {
	Users       UserRepository
	Limiter     ratelimit.Limiter
	LoginLimit  int
	LoginWindow time.Duration
}

type RegisterInput struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	WardNumber string
	Password   string
}

type ProfileUpdateInput struct {
	Name       string
	Phone      string
	Address    string
	WardNumber string
}

type AdminUserUpdateInput struct {
	TargetID string
	Role     string
	Active   *bool
}

func NewUserService(users UserRepository, limiter ratelimit.Limiter, loginLimit int, loginWindow time.Duration) *UserService {
	return &UserService{
		Users:       users,
		Limiter:     limiter,
		LoginLimit:  loginLimit,
		LoginWindow: loginWindow,
	}
}

// Register creates a citizen account. Staff and admin accounts are only made
// through the admin console.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (portal.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return portal.User{}, portal.NewError(portal.KindBadRequest, "An account with this email already exists", portal.ErrConflict)
	} else if !errors.Is(err, portal.ErrNotFound) {
		return portal.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return portal.User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.Users.Create(ctx, portal.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		WardNumber:   strings.TrimSpace(in.WardNumber),
		PasswordHash: string(hash),
		Role:         portal.RoleCitizen,
		Active:       true,
		Verified:     false,
	})
}

// Login verifies credentials under a per-caller rate limit. The same message
// covers unknown email and wrong password.
func (s *UserService) Login(ctx context.Context, email, password, clientKey string) (portal.User, error) {
	if s.Limiter != nil && s.LoginLimit > 0 {
		decision, err := s.Limiter.Allow(ctx, "login:"+clientKey, s.LoginLimit, s.LoginWindow)
		if err != nil {
			return portal.User{}, err
		}
		if !decision.Allowed {
			return portal.User{}, portal.NewError(portal.KindRateLimited, "Too many login attempts, try again later", nil)
		}
	}
	user, err := s.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, portal.ErrNotFound) {
			return portal.User{}, portal.NewError(portal.KindUnauthenticated, "Invalid email or password", portal.ErrUnauthenticated)
		}
		return portal.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return portal.User{}, portal.NewError(portal.KindUnauthenticated, "Invalid email or password", portal.ErrUnauthenticated)
	}
	if !user.Active {
		return portal.User{}, portal.NewError(portal.KindUnauthenticated, "Account is deactivated", portal.ErrUnauthenticated)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (portal.User, error) {
	return s.Users.FindByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, in ProfileUpdateInput) (portal.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return portal.User{}, err
	}
	user.Name = strings.TrimSpace(in.Name)
	user.Phone = strings.TrimSpace(in.Phone)
	user.Address = strings.TrimSpace(in.Address)
	user.WardNumber = strings.TrimSpace(in.WardNumber)
	return s.Users.Update(ctx, user)
}

func (s *UserService) ChangePassword(ctx context.Context, id, current, next string) error {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return portal.NewError(portal.KindBadRequest, "Current password is incorrect", portal.ErrInvalidArgument)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	_, err = s.Users.Update(ctx, user)
	return err
}

func (s *UserService) ListUsers(ctx context.Context, filter UserListFilter) ([]portal.User, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.Users.List(ctx, filter)
}

// AdminUpdate changes a target account's role or active flag. An admin can
// neither deactivate nor demote their own account, so the console can never
// lock out its last administrator through this route.
func (s *UserService) AdminUpdate(ctx context.Context, actor portal.Principal, in AdminUserUpdateInput) (portal.User, error) {
	user, err := s.Users.FindByID(ctx, in.TargetID)
	if err != nil {
		return portal.User{}, err
	}
	if in.Role != "" {
		if !portal.ValidRole(in.Role) {
			return portal.User{}, portal.NewError(portal.KindBadRequest, "Unknown role", portal.ErrInvalidArgument)
		}
		if in.TargetID == actor.ID && portal.Role(in.Role) != portal.RoleAdmin {
			return portal.User{}, portal.NewError(portal.KindForbiddenRole, "You cannot change your own role", portal.ErrForbidden)
		}
		user.Role = portal.Role(in.Role)
	}
	if in.Active != nil {
		if in.TargetID == actor.ID && !*in.Active {
			return portal.User{}, portal.NewError(portal.KindForbiddenRole, "You cannot deactivate your own account", portal.ErrForbidden)
		}
		user.Active = *in.Active
	}
	return s.Users.Update(ctx, user)
}

// Verify flips the target account's verified flag; staff and admin only.
func (s *UserService) Verify(ctx context.Context, targetID string) (portal.User, error) {
	user, err := s.Users.FindByID(ctx, targetID)
	if err != nil {
		return portal.User{}, err
	}
	user.Verified = true
	return s.Users.Update(ctx, user)
}
