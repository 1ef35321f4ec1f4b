package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	mock_interfaces "github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces/mocks"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_AdminLogin(t *testing.T) {
	uc := NewAuthUseCase(nil, AdminCredentials{Username: "admin", Password: "changeme123"}, "k", time.Hour)

	if _, err := uc.AdminLogin(context.Background(), "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	p, err := uc.AdminLogin(context.Background(), "admin", "changeme123")
	if err != nil || p.Role != RoleAdmin {
		t.Fatalf("expected admin principal, got %+v err=%v", p, err)
	}
}

func TestAuthUseCase_EmployeeLogin(t *testing.T) {
	bcryptHash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	sum := sha256.Sum256([]byte("legacy-pass"))
	legacyHash := hex.EncodeToString(sum[:])

	cases := []struct {
		name     string
		employee entities.Employee
		password string
		wantErr  bool
	}{
		{"bcrypt hash", entities.Employee{ID: "EMP1", Name: "Bo", PasswordHash: bcryptHash, Active: true}, "secret1", false},
		{"legacy sha256 hash", entities.Employee{ID: "EMP1", Name: "Bo", PasswordHash: legacyHash, Active: true}, "legacy-pass", false},
		{"wrong password", entities.Employee{ID: "EMP1", PasswordHash: bcryptHash, Active: true}, "nope", true},
		{"inactive", entities.Employee{ID: "EMP1", PasswordHash: bcryptHash, Active: false}, "secret1", true},
		{"unknown user", entities.Employee{}, "secret1", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
			uc := NewAuthUseCase(repo, AdminCredentials{}, "k", time.Hour)

			repo.EXPECT().GetByUsername(gomock.Any(), "bo").Return(tc.employee, nil)
			if !tc.wantErr {
				repo.EXPECT().TouchLastLogin(gomock.Any(), "EMP1", gomock.Any()).Return(errors.New("sheet busy"))
			}

			p, err := uc.EmployeeLogin(context.Background(), "bo", tc.password)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Fatalf("expected ErrInvalidCredentials, got %v", err)
				}
				return
			}
			if err != nil || p.Role != RoleEmployee || p.Subject != "EMP1" {
				t.Fatalf("unexpected principal %+v err=%v", p, err)
			}
		})
	}
}

func TestAuthUseCase_Tokens(t *testing.T) {
	uc := NewAuthUseCase(nil, AdminCredentials{}, "signing-key", time.Hour)

	token, expires, err := uc.IssueToken(Principal{Role: RoleEmployee, Subject: "EMP1", Name: "Bo"})
	if err != nil || token == "" || expires.Before(time.Now()) {
		t.Fatalf("unexpected token %q exp=%v err=%v", token, expires, err)
	}

	p, err := uc.ParseToken(token)
	if err != nil || p.Subject != "EMP1" || p.Role != RoleEmployee || p.Name != "Bo" {
		t.Fatalf("unexpected principal %+v err=%v", p, err)
	}

	t.Run("wrong key", func(t *testing.T) {
		other := NewAuthUseCase(nil, AdminCredentials{}, "other-key", time.Hour)
		if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		old := NewAuthUseCase(nil, AdminCredentials{}, "signing-key", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		stale, _, err := old.IssueToken(Principal{Role: RoleAdmin, Subject: "admin"})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := uc.ParseToken(stale); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := PortalClaims{Role: "customer", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("signing-key"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := uc.ParseToken(signed); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
