package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// ValidRole reports whether role is one of the two roles the platform knows.
// Role is fixed at registration and never changes afterwards.
func ValidRole(role string) bool {
	return role == RoleTeacher || role == RoleStudent
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	EcoPoints int                `bson:"eco_points" json:"ecoPoints"`
	Level     int                `bson:"level" json:"level"`
	Bio       string             `bson:"bio" json:"bio"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// PublicUser is the credential-free view returned by the API.
type PublicUser struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
	EcoPoints int                `json:"ecoPoints"`
	Level     int                `json:"level"`
	Bio       string             `json:"bio,omitempty"`
	Avatar    string             `json:"avatar,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		EcoPoints: u.EcoPoints,
		Level:     u.Level,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
	}
}

// LeaderboardEntry is the slim projection used for ranking students.
type LeaderboardEntry struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	EcoPoints int                `bson:"eco_points" json:"ecoPoints"`
	Level     int                `bson:"level" json:"level"`
}
