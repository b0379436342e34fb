package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user in the authentication system.
// The Mongo ObjectID stays internal; the stable identity exposed on the
// wire and bound to sessions is the server-generated UUID.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UUID           string             `bson:"uuid" json:"id"`
	Username       string             `bson:"username" json:"username"`
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"password_hash" json:"-"` // Stored hashed password
	FirstName      string             `bson:"first_name,omitempty" json:"firstName,omitempty"`
	LastName       string             `bson:"last_name,omitempty" json:"lastName,omitempty"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture string             `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// NormalizeEmail lowercases and trims an email address before validation
// and lookups so that uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
