package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"eco-quiz-backend/internal/event"
	"eco-quiz-backend/internal/models"
	"eco-quiz-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Sessions stay valid for a week; role is immutable, so a token is never
// re-checked against live role changes within its lifetime.
const tokenLifetime = 7 * 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type AuthService struct {
	Users     *repository.UserRepository
	jwtSecret []byte
	events    event.Publisher
}

func NewAuthService(users *repository.UserRepository, jwtSecret string, events event.Publisher) *AuthService {
	return &AuthService{Users: users, jwtSecret: []byte(jwtSecret), events: events}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (string, *models.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return "", nil, validationError("name, email, password and role are required")
	}
	if !models.ValidRole(input.Role) {
		return "", nil, validationError("role must be either 'teacher' or 'student'")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	user := &models.User{
		Name:      input.Name,
		Email:     email,
		Password:  string(hash),
		Role:      input.Role,
		EcoPoints: 0,
		Level:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	if s.events != nil {
		if err := s.events.Publish("user.registered", map[string]string{
			"userId": user.ID.Hex(),
			"role":   user.Role,
		}); err != nil {
			log.Printf("Warning: failed to publish user registered event: %v", err)
		}
	}

	token, err := s.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, validationError("email and password are required")
	}

	user, err := s.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GenerateToken(userID primitive.ObjectID, role string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
		UserID: userID.Hex(),
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ResolveToken validates a bearer token and loads the account it was signed
// for. Every failure mode collapses into ErrInvalidToken.
func (s *AuthService) ResolveToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
