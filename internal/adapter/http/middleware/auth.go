package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"legal_intake/internal/domain/entities"
	"legal_intake/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CtxPrincipal is the gin context key carrying the authenticated principal.
const CtxPrincipal = "principal"

var (
	errMissingAuthHeader = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing Authorization header", http.StatusUnauthorized)
	errInvalidToken      = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

type principalClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthRequired verifies the Bearer token issued by the identity provider and
// injects the resulting Principal into the gin context. The token is an
// HS256 JWT with the user id in `sub` and the role in `role`.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if authz == "" {
			c.AbortWithStatusJSON(errMissingAuthHeader.HTTPStatus, errMissingAuthHeader.ToHTTPError())
			return
		}
		token, ok := ExtractBearerToken(authz)
		if !ok || token == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		p, err := verifyToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(CtxPrincipal, p)
		c.Next()
	}
}

// PrincipalFromContext returns the principal injected by AuthRequired.
func PrincipalFromContext(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(CtxPrincipal)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}

// ExtractBearerToken pulls the token out of an Authorization header value.
func ExtractBearerToken(authz string) (string, bool) {
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.Trim(strings.TrimSpace(parts[1]), "\"'"), true
}

func verifyToken(token string, secret []byte) (entities.Principal, error) {
	var claims principalClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return entities.Principal{}, errInvalidToken
	}

	role := entities.Role(strings.ToUpper(strings.TrimSpace(claims.Role)))
	if claims.Subject == "" || !role.IsValid() {
		return entities.Principal{}, errInvalidToken
	}
	return entities.Principal{ID: claims.Subject, Role: role}, nil
}

// JWTSecretFromEnv reads the shared signing secret for the identity
// provider's tokens.
func JWTSecretFromEnv() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}
