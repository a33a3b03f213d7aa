package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/goa/v3/security"
	"gorm.io/gorm"

	"billiton/gen/auth"
	"billiton/internal/domain"
	"billiton/internal/util"
)

func seedUser(t *testing.T, db *gorm.DB, username, password string, staff, admin, active bool) *domain.User {
	t.Helper()

	hashed, err := util.HashPassword(password)
	require.NoError(t, err)

	user := &domain.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: hashed,
		IsActive:       active,
		IsStaff:        staff,
		IsAdmin:        admin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	seedUser(t, db, "operator", "s3cret-pass", true, false, true)

	res, err := svc.Login(context.Background(), &auth.LoginPayload{
		Username: "operator",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", res.TokenType)
	claims, err := util.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Username)
	assert.True(t, claims.IsStaff)

	// Login records last_login.
	var user domain.User
	require.NoError(t, db.Where("username = ?", "operator").First(&user).Error)
	assert.NotNil(t, user.LastLogin)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	seedUser(t, db, "operator", "s3cret-pass", true, false, true)

	res, err := svc.Login(context.Background(), &auth.LoginPayload{
		Username: "operator",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "incorrect username or password")
}

func TestLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Login(context.Background(), &auth.LoginPayload{
		Username: "ghost",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incorrect username or password")
}

func TestLoginInactiveUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	seedUser(t, db, "operator", "s3cret-pass", true, false, false)

	_, err := svc.Login(context.Background(), &auth.LoginPayload{
		Username: "operator",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactive")
}

func TestJWTAuthStaffScope(t *testing.T) {
	db := newTestDB(t)
	svc := NewConsultationService(db, &fakeMailer{}, testNotifyTo)

	staff := seedUser(t, db, "operator", "s3cret-pass", true, false, true)
	token, err := util.GenerateToken(staff)
	require.NoError(t, err)

	scheme := &security.JWTScheme{
		Name:           "jwt",
		Scopes:         []string{"admin", "staff"},
		RequiredScopes: []string{"staff"},
	}

	ctx, err := svc.JWTAuth(context.Background(), token, scheme)
	require.NoError(t, err)

	user, ok := ctx.Value("user").(*domain.User)
	require.True(t, ok)
	assert.Equal(t, "operator", user.Username)
}

func TestJWTAuthRejectsNonStaff(t *testing.T) {
	db := newTestDB(t)
	svc := NewConsultationService(db, &fakeMailer{}, testNotifyTo)

	visitor := seedUser(t, db, "visitor", "s3cret-pass", false, false, true)
	token, err := util.GenerateToken(visitor)
	require.NoError(t, err)

	scheme := &security.JWTScheme{
		Name:           "jwt",
		Scopes:         []string{"admin", "staff"},
		RequiredScopes: []string{"staff"},
	}

	_, err = svc.JWTAuth(context.Background(), token, scheme)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient permissions")
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewConsultationService(db, &fakeMailer{}, testNotifyTo)

	_, err := svc.JWTAuth(context.Background(), "not-a-token", &security.JWTScheme{Name: "jwt"})
	require.Error(t, err)
}

func TestMe(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	user := seedUser(t, db, "operator", "s3cret-pass", true, false, true)

	ctx := context.WithValue(context.Background(), "user", user)
	res, err := svc.Me(ctx, &auth.MePayload{})
	require.NoError(t, err)

	assert.Equal(t, "operator", res.Username)
	assert.True(t, res.IsStaff)
	assert.False(t, res.IsAdmin)
}

func TestMeWithoutUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Me(context.Background(), &auth.MePayload{})
	require.Error(t, err)
}
