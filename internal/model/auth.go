package model

import "github.com/golang-jwt/jwt/v5"

// EmployeeClaims are JWT claims for employee authentication
type EmployeeClaims struct {
	EmployeeID  string `json:"employeeId"`
	DisplayName string `json:"displayName"`
	jwt.RegisteredClaims
}

// AdminClaims are JWT claims for administrative endpoints
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token       string `json:"token"`
	EmployeeID  string `json:"employeeId,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Admin       bool   `json:"admin"`
}
