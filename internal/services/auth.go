package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"goa.design/goa/v3/security"
	"gorm.io/gorm"

	"billiton/gen/auth"
	"billiton/internal/domain"
	"billiton/internal/metrics"
	"billiton/internal/util"
)

// AuthService implements the auth service
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// JWTAuth implements the authorization logic for the JWT security scheme
func (s *AuthService) JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error) {
	user, err := authenticateStaff(s.db, token, schema)
	if err != nil {
		return nil, AuthUnauthorized(err.Error())
	}
	return context.WithValue(ctx, "user", user), nil
}

// Login implements the login method
func (s *AuthService) Login(ctx context.Context, p *auth.LoginPayload) (*auth.Loginresult, error) {
	// Trim whitespace from credentials
	username := strings.TrimSpace(p.Username)
	password := strings.TrimSpace(p.Password)

	log.Printf("[AUTH] Login attempt for user: %s", username)

	var user domain.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[AUTH] Login failed: user '%s' not found", username)
			metrics.RecordAuthAttempt(false)
			return nil, AuthUnauthorized("incorrect username or password")
		}
		log.Printf("[AUTH] Login failed: database error for user '%s': %v", username, err)
		metrics.RecordAuthAttempt(false)
		return nil, err
	}

	if !util.CheckPasswordHash(password, user.HashedPassword) {
		log.Printf("[AUTH] Login failed: invalid password for user '%s'", username)
		metrics.RecordAuthAttempt(false)
		return nil, AuthUnauthorized("incorrect username or password")
	}

	if !user.IsActive {
		log.Printf("[AUTH] Login failed: user '%s' is inactive", username)
		metrics.RecordAuthAttempt(false)
		return nil, AuthUnauthorized("user account is inactive")
	}

	// Update last login
	now := time.Now()
	user.LastLogin = &now
	s.db.Save(&user)

	// Generate token
	token, err := util.GenerateToken(&user)
	if err != nil {
		log.Printf("[AUTH] Login failed: token generation error for user '%s': %v", username, err)
		metrics.RecordAuthAttempt(false)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("[AUTH] Login successful for user: %s", username)
	metrics.RecordAuthAttempt(true)

	return &auth.Loginresult{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// Me implements the me method
func (s *AuthService) Me(ctx context.Context, p *auth.MePayload) (*auth.Userresult, error) {
	user, ok := ctx.Value("user").(*domain.User)
	if !ok {
		return nil, AuthUnauthorized("not authenticated")
	}

	res := &auth.Userresult{
		ID:        int(user.ID),
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		IsStaff:   user.IsStaff,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if user.LastLogin != nil {
		ll := user.LastLogin.Format("2006-01-02T15:04:05Z")
		res.LastLogin = &ll
	}
	return res, nil
}
