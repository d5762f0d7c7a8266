package service

import (
	"context"
	"strings"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/core/auth"
	"taskboard-api/internal/domain"
	"taskboard-api/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewUserService(users domain.UserRepository, jwter *auth.JWTer) *UserService {
	return &UserService{users: users, jwter: jwter}
}

type RegisterInput struct {
	Name     string
	Lastname string
	Username string
	Email    string
	Password string
	Age      int
}

// AuthResult 仅注册/登录返回 token，其余用户操作不带
type AuthResult struct {
	User  *domain.User
	Token string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal("registration failed", err)
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         in.Name,
		Lastname:     in.Lastname,
		Username:     in.Username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		Age:          in.Age,
		Role:         domain.RoleUser,
	}
	if u.Username == "" {
		// 未提供用户名时用邮箱前缀兜底
		if at := strings.IndexByte(u.Email, '@'); at > 0 {
			u.Username = u.Email[:at]
		} else {
			u.Username = u.Email
		}
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isDupKey(err) {
			return nil, apperr.Conflict("email or username already in use")
		}
		return nil, apperr.Internal("registration failed", err)
	}
	tok, err := s.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	return &AuthResult{User: u, Token: tok}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, apperr.Internal("login failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, apperr.Unauthorized("incorrect password")
	}
	tok, err := s.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	return &AuthResult{User: u, Token: tok}, nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("finding user by id failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Internal("finding all users failed", err)
	}
	return users, nil
}

type UserUpdate struct {
	Name     *string
	Lastname *string
	Username *string
	Email    *string
	Password *string
	Age      *int
	Role     *string
}

func (s *UserService) Update(ctx context.Context, id string, in UserUpdate) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("update failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Lastname != nil {
		u.Lastname = *in.Lastname
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, apperr.Internal("update failed", err)
		}
		u.PasswordHash = hash
	}
	if in.Age != nil {
		u.Age = *in.Age
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if err := s.users.Update(ctx, u); err != nil {
		if isDupKey(err) {
			return nil, apperr.Conflict("email or username already in use")
		}
		return nil, apperr.Internal("update failed", err)
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("deletion failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, apperr.Internal("deletion failed", err)
	}
	return u, nil
}

// isDupKey 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
