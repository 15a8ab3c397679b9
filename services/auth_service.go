package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"train-booking/database"
	"train-booking/domain"
	"train-booking/logger"
	"train-booking/models"
)

const uniqueViolation = "23505"

var (
	jwtSecret []byte
	tokenTTL  = 24 * time.Hour
)

// InitAuthService sets the token signing secret and lifetime
func InitAuthService(secret string, ttl time.Duration) {
	jwtSecret = []byte(secret)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

// Claims are carried by issued tokens
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Register creates an account with a bcrypt password hash
func Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	db := database.GetDB()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Email: email, FullName: strings.TrimSpace(req.FullName)}
	err = db.QueryRowContext(ctx, `
		INSERT INTO users (email, full_name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, user.Email, user.FullName, string(hash)).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.GetLogger().Infow("User registered", "user_id", user.ID)
	return &user, nil
}

// Login checks credentials and issues a signed token
func Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	db := database.GetDB()

	var user models.User
	err := db.QueryRowContext(ctx, `
		SELECT id, email, full_name, password_hash, created_at
		FROM users
		WHERE email = $1
	`, strings.ToLower(strings.TrimSpace(req.Email))).Scan(
		&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.UnauthorizedError{Msg: "invalid email or password"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.UnauthorizedError{Msg: "invalid email or password", Err: err}
	}

	token, expiresAt, err := IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// IssueToken signs an HS256 token whose subject is the user id
func IssueToken(user models.User) (string, time.Time, error) {
	if len(jwtSecret) == 0 {
		return "", time.Time{}, errors.New("auth service not initialised")
	}
	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	claims := Claims{
		Email: user.Email,
		Name:  user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseToken verifies a token and returns its claims
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, domain.UnauthorizedError{Msg: "invalid token", Err: err}
	}
	if claims.Subject == "" {
		return nil, domain.UnauthorizedError{Msg: "token has no subject"}
	}
	return claims, nil
}
