package service

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cyberassess/internal/model"
	"cyberassess/internal/repository"
)

// AuthService handles employee and admin authentication
type AuthService struct {
	employeeRepo  repository.EmployeeRepo
	adminUsername string
	adminPassword string
	jwtSecret     []byte
}

// NewAuthService creates a new auth service. Admin credentials come from env
// (ADMIN_USERNAME / ADMIN_PASSWORD); employees live in the database with
// bcrypt password hashes.
func NewAuthService(employeeRepo repository.EmployeeRepo) *AuthService {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		employeeRepo:  employeeRepo,
		adminUsername: username,
		adminPassword: password,
		jwtSecret:     []byte(secret),
	}
}

// Login validates credentials and returns a token. Admin env credentials win
// over the employee table so a fresh deployment is usable before seeding.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	if username == s.adminUsername && password == s.adminPassword {
		token, err := s.generateAdminToken()
		if err != nil {
			return nil, err
		}
		return &model.LoginResponse{Token: token, Admin: true}, nil
	}

	employee, err := s.employeeRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateEmployeeToken(employee)
	if err != nil {
		return nil, err
	}
	return &model.LoginResponse{
		Token:       token,
		EmployeeID:  employee.ID,
		DisplayName: employee.DisplayName,
	}, nil
}

// GenerateEmployeeToken creates a 24h token carrying the employee identity
func (s *AuthService) GenerateEmployeeToken(employee *model.Employee) (string, error) {
	claims := &model.EmployeeClaims{
		EmployeeID:  employee.ID,
		DisplayName: employee.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateEmployeeToken validates an employee JWT and returns its claims
func (s *AuthService) ValidateEmployeeToken(tokenString string) (*model.EmployeeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.EmployeeClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.EmployeeClaims)
	if !ok || !token.Valid || claims.EmployeeID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateAdminToken validates an admin JWT and returns its claims
func (s *AuthService) ValidateAdminToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid || claims.AdminID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) generateAdminToken() (string, error) {
	claims := &model.AdminClaims{
		AdminID: "adm_" + uuid.New().String()[:8],
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
