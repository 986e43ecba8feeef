package model

import "time"

// Customer is the organization being assessed
type Customer struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	ContactEmail string    `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// Employee is the authenticated principal driving assessments
type Employee struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	DisplayName  string    `json:"displayName" bson:"displayName"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
