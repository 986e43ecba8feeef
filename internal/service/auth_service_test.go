package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cyberassess/internal/model"
)

func newAuthFixture(t *testing.T) (*AuthService, *model.Employee) {
	t.Helper()
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "toor")
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeEmployeeRepo{}
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	employee := &model.Employee{
		Username:     "jdoe",
		PasswordHash: string(hash),
		DisplayName:  "John Doe",
	}
	_, err = repo.Create(context.Background(), employee)
	require.NoError(t, err)

	return NewAuthService(repo), employee
}

func TestLoginEmployee(t *testing.T) {
	svc, employee := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), "jdoe", "hunter2")
	require.NoError(t, err)

	assert.False(t, resp.Admin)
	assert.Equal(t, employee.ID, resp.EmployeeID)
	assert.Equal(t, "John Doe", resp.DisplayName)

	claims, err := svc.ValidateEmployeeToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, claims.EmployeeID)
	assert.Equal(t, "John Doe", claims.DisplayName)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "jdoe", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "nobody", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAdmin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), "root", "toor")
	require.NoError(t, err)
	assert.True(t, resp.Admin)

	claims, err := svc.ValidateAdminToken(resp.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.AdminID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	adminResp, err := svc.Login(ctx, "root", "toor")
	require.NoError(t, err)
	_, err = svc.ValidateEmployeeToken(adminResp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	empResp, err := svc.Login(ctx, "jdoe", "hunter2")
	require.NoError(t, err)
	_, err = svc.ValidateAdminToken(empResp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.ValidateEmployeeToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateAdminToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsTokenSignedWithOtherSecret(t *testing.T) {
	svc, employee := newAuthFixture(t)

	token, err := svc.GenerateEmployeeToken(employee)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated-secret")
	other := NewAuthService(&fakeEmployeeRepo{})
	_, err = other.ValidateEmployeeToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
