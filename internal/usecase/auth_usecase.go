package usecase

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	tokenIssuer  = "cleaning-web"
)

// Principal is the authenticated portal user carried by the auth cookie.
type Principal struct {
	Role    string
	Subject string
	Name    string
}

// PortalClaims is the JWT payload of the auth cookie.
type PortalClaims struct {
	Role string `json:"role"`
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// AdminCredentials are the single admin account configured through env.
type AdminCredentials struct {
	Username string
	Password string
}

type IAuthUseCase interface {
	AdminLogin(ctx context.Context, username, password string) (Principal, error)
	EmployeeLogin(ctx context.Context, username, password string) (Principal, error)
	IssueToken(p Principal) (string, time.Time, error)
	ParseToken(token string) (Principal, error)
}

type AuthUseCase struct {
	employees  interfaces.IEmployeeRepository
	admin      AdminCredentials
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(employees interfaces.IEmployeeRepository, admin AdminCredentials, signingKey string, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{
		employees:  employees,
		admin:      admin,
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}
}

func (u *AuthUseCase) AdminLogin(ctx context.Context, username, password string) (Principal, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.admin.Password)) == 1
	if u.admin.Username == "" || !userOK || !passOK {
		logger.FromContext(ctx).Warn("[auth][usecase] admin login rejected", zap.String("username", username))
		return Principal{}, ErrInvalidCredentials
	}
	return Principal{Role: RoleAdmin, Subject: u.admin.Username, Name: "Administrator"}, nil
}

// EmployeeLogin accepts bcrypt hashes and the legacy hex SHA-256 digests.
// Inactive employees cannot log in.
func (u *AuthUseCase) EmployeeLogin(ctx context.Context, username, password string) (Principal, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Principal{}, ErrInvalidCredentials
	}
	e, err := u.employees.GetByUsername(ctx, username)
	if err != nil {
		return Principal{}, err
	}
	if e.ID == "" || !e.Active || !CheckPassword(e.PasswordHash, password) {
		log.Warn("[auth][usecase] employee login rejected", zap.String("username", username))
		return Principal{}, ErrInvalidCredentials
	}
	if err := u.employees.TouchLastLogin(ctx, e.ID, u.now().UTC()); err != nil {
		log.Warn("[auth][usecase] last login not recorded", zap.String("employee_id", e.ID), zap.Error(err))
	}
	return Principal{Role: RoleEmployee, Subject: e.ID, Name: e.Name}, nil
}

// CheckPassword compares a password with a stored Password_Hash value.
func CheckPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	sum := sha256.Sum256([]byte(password))
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(stored)), []byte(hex.EncodeToString(sum[:]))) == 1
}

func (u *AuthUseCase) IssueToken(p Principal) (string, time.Time, error) {
	now := u.now()
	expires := now.Add(u.ttl)
	claims := PortalClaims{
		Role: p.Role,
		Name: p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

func (u *AuthUseCase) ParseToken(token string) (Principal, error) {
	claims := &PortalClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return u.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return Principal{}, ErrInvalidToken
	}
	if claims.Role != RoleAdmin && claims.Role != RoleEmployee {
		return Principal{}, ErrInvalidToken
	}
	return Principal{Role: claims.Role, Subject: claims.Subject, Name: claims.Name}, nil
}
