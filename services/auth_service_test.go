package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"train-booking/database"
	"train-booking/domain"
	"train-booking/models"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		db.Close()
	})
	return mock
}

func TestRegister(t *testing.T) {
	mock := setupMockDB(t)
	created := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("asha@example.in", "Asha Rao", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, created))

	user, err := Register(context.Background(), models.RegisterRequest{
		Email: "  Asha@Example.in ", Password: "secret123", FullName: "Asha Rao ",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID != 7 || user.Email != "asha@example.in" || !user.CreatedAt.Equal(created) {
		t.Fatalf("unexpected user %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

	_, err := Register(context.Background(), models.RegisterRequest{
		Email: "asha@example.in", Password: "secret123", FullName: "Asha",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func loginRows(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return sqlmock.NewRows([]string{"id", "email", "full_name", "password_hash", "created_at"}).
		AddRow(7, "asha@example.in", "Asha Rao", string(hash), time.Now())
}

func TestLogin(t *testing.T) {
	InitAuthService("test-secret", time.Hour)
	mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("asha@example.in").
		WillReturnRows(loginRows(t, "secret123"))

	resp, err := Login(context.Background(), models.LoginRequest{Email: "ASHA@example.in", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" || resp.User.ID != 7 {
		t.Fatalf("unexpected response %+v", resp)
	}

	claims, err := ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Subject != "7" || claims.Email != "asha@example.in" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	InitAuthService("test-secret", time.Hour)

	t.Run("wrong password", func(t *testing.T) {
		mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnRows(loginRows(t, "secret123"))

		_, err := Login(context.Background(), models.LoginRequest{Email: "asha@example.in", Password: "nope"})
		if !domain.IsUnauthorized(err) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "password_hash", "created_at"}))

		_, err := Login(context.Background(), models.LoginRequest{Email: "ghost@example.in", Password: "x"})
		if !domain.IsUnauthorized(err) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("database down", func(t *testing.T) {
		mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnError(errors.New("connection refused"))

		_, err := Login(context.Background(), models.LoginRequest{Email: "asha@example.in", Password: "x"})
		if err == nil || domain.IsUnauthorized(err) {
			t.Fatalf("expected internal error, got %v", err)
		}
	})
}

func TestParseTokenRejectsTampering(t *testing.T) {
	InitAuthService("test-secret", time.Hour)
	token, _, err := IssueToken(models.User{ID: 3, Email: "a@b.in"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	InitAuthService("another-secret", time.Hour)
	if _, err := ParseToken(token); !domain.IsUnauthorized(err) {
		t.Fatalf("token signed with another secret must be rejected, got %v", err)
	}

	InitAuthService("test-secret", time.Hour)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "3"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := ParseToken(none); !domain.IsUnauthorized(err) {
		t.Fatalf("unsigned token must be rejected, got %v", err)
	}
	if _, err := ParseToken("garbage"); !domain.IsUnauthorized(err) {
		t.Fatalf("garbage must be rejected, got %v", err)
	}
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	InitAuthService("", 0)
	defer InitAuthService("test-secret", time.Hour)

	if _, _, err := IssueToken(models.User{ID: 1}); err == nil {
		t.Fatalf("expected error without a signing secret")
	}
}
