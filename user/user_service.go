package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	InsertUser(ctx context.Context, u User) (User, error)
}

type Service struct {
	repo   UserRepository
	secret []byte
}

func NewService(repo UserRepository, jwtSecret string) *Service {
	return &Service{repo: repo, secret: []byte(jwtSecret)}
}

func (s *Service) FindUserByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *Service) Register(ctx context.Context, name, email, password, role string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if len(role) == 0 {
		role = RoleClient
	}

	return s.repo.InsertUser(ctx, User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
}

// Login checks the credentials and returns the user along with a signed
// session token.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)

	if errors.Is(err, ErrUserNotFound) {
		return User{}, "", ErrInvalidCredentials
	}

	if err != nil {
		return User{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"exp":  jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)

	if err != nil {
		return User{}, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return u, token, nil
}

// VerifyToken parses a session token produced by Login.
func (s *Service) VerifyToken(tokenString string) (AuthUser, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	if err != nil || !token.Valid {
		return AuthUser{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return AuthUser{}, ErrInvalidToken
	}

	id, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)

	if len(id) == 0 {
		return AuthUser{}, ErrInvalidToken
	}

	return AuthUser{ID: id, Role: role, Admin: role == RoleAdmin}, nil
}
