package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-ServiceBooking/internal/api/handlers"
)

// RoleAdmin роль, открывающая админские маршруты
const RoleAdmin = "admin"

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid token"
	msgForbidden    = "admin role required"
)

var (
	// ErrMissingToken возвращается, если заголовок Authorization отсутствует или не Bearer
	ErrMissingToken = errors.New("auth: missing bearer token")

	// ErrInvalidToken возвращается, если токен не прошёл проверку подписи или сроков
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Claims claims админского токена
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth проверяет HS256 токен из заголовка Authorization.
// Без токена или с невалидным токеном - 401, с ролью не admin - 403.
func AdminAuth(secret []byte, issuer string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := ParseToken(r.Header.Get("Authorization"), secret, issuer)
			if err != nil {
				logger.Warn("AdminAuth: %s %s rejected: %v", r.Method, r.URL.Path, err)
				if errors.Is(err, ErrMissingToken) {
					handlers.RespondUnauthorized(w, msgMissingToken)
				} else {
					handlers.RespondUnauthorized(w, msgInvalidToken)
				}
				return
			}

			if claims.Role != RoleAdmin {
				logger.Warn("AdminAuth: %s %s forbidden for subject=%s role=%s",
					r.Method, r.URL.Path, claims.Subject, claims.Role)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ParseToken разбирает значение заголовка "Bearer <token>"
func ParseToken(header string, secret []byte, issuer string) (*Claims, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims, nil
}

// IssueToken выпускает HS256 токен с ролью role
func IssueToken(secret []byte, issuer, subject, role string, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
