package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// AuthService handles operator login and lookup for the gateway's
// login / getUserById actions.
type AuthService struct {
	DB        *sql.DB
	Secret    string
	TokenTTL  time.Duration
	RequestID string
}

func (s AuthService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

// Login checks the password against the stored bcrypt hash and signs a
// session token. The identifier matches email or username.
func (s AuthService) Login(identifier, password string) (string, models.User, error) {
	identifier = strings.TrimSpace(identifier)
	var user models.User
	if identifier == "" || password == "" {
		return "", user, domain.ValidationError{Field: "username", Msg: "username and password are required"}
	}

	var passwordHash string
	err := s.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(username,''), COALESCE(email,''), COALESCE(phone,''),
		       COALESCE(password_hash,''), COALESCE(role,'user'), COALESCE(status,'active')
		FROM users WHERE email = ? OR username = ? LIMIT 1`, identifier, identifier).Scan(
		&user.ID, &user.Name, &user.Username, &user.Email, &user.Phone,
		&passwordHash, &user.Role, &user.Status,
	)
	if err == sql.ErrNoRows {
		return "", models.User{}, domain.UnauthorizedError{Msg: "invalid username or password"}
	}
	if err != nil {
		return "", models.User{}, domain.InternalError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return "", models.User{}, domain.UnauthorizedError{Msg: "invalid username or password"}
	}
	if user.Status != "active" {
		return "", models.User{}, domain.UnauthorizedError{Msg: "account is disabled"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.ttl()).Unix(),
	})
	signed, err := token.SignedString([]byte(s.Secret))
	if err != nil {
		return "", models.User{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", user.ID))
	return signed, user, nil
}

// GetUserByID returns the operator profile without credentials.
func (s AuthService) GetUserByID(id int64) (models.User, error) {
	var user models.User
	err := s.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(username,''), COALESCE(email,''), COALESCE(phone,''),
		       COALESCE(role,'user'), COALESCE(status,'active')
		FROM users WHERE id = ? LIMIT 1`, id).Scan(
		&user.ID, &user.Name, &user.Username, &user.Email, &user.Phone,
		&user.Role, &user.Status,
	)
	if err == sql.ErrNoRows {
		return user, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return user, domain.InternalError{Err: err}
	}
	return user, nil
}

// ParseToken validates a signed session token and returns the user id.
func (s AuthService) ParseToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.Secret), nil
	})
	if err != nil || !token.Valid {
		return 0, domain.UnauthorizedError{Msg: "invalid or expired token"}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.UnauthorizedError{Msg: "invalid token claims"}
	}
	uid, ok := claims["user_id"].(float64)
	if !ok {
		return 0, domain.UnauthorizedError{Msg: "invalid token claims"}
	}
	return int64(uid), nil
}
