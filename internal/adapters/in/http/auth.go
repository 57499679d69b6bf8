package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// principalContextKey is the echo context key holding the authenticated
// principal.
const principalContextKey = "principal"

// AuthMiddleware authenticates requests with HMAC-signed JWT bearer tokens
// and places the resulting principal in the request context. Token claims:
// "sub" carries the profile id, "role" the role name and "super_admin" the
// override flag. An optional "custom_role" claim ({"name": ..., "grants":
// {<permission>: bool}}) attaches extra grants on top of the named role.
type AuthMiddleware struct {
	secret []byte
	logger *slog.Logger
}

// NewAuthMiddleware creates the JWT authentication middleware.
func NewAuthMiddleware(secret string, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(secret),
		logger: logger.With("component", "auth"),
	}
}

// Require rejects requests without a valid bearer token.
func (m *AuthMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		principal, err := m.principalFromToken(tokenString)
		if err != nil {
			m.logger.DebugContext(c.Request().Context(), "rejected token", "error", err)
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid bearer token",
			})
		}

		c.Set(principalContextKey, principal)
		return next(c)
	}
}

func (m *AuthMiddleware) principalFromToken(tokenString string) (access.Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil {
		return access.Principal{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return access.Principal{}, fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return access.Principal{}, err
	}

	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return access.Principal{}, err
	}

	roleName, _ := claims["role"].(string)
	superAdmin, _ := claims["super_admin"].(bool)

	if rawCustomRole, ok := claims["custom_role"]; ok {
		customRole, err := customRoleFromClaim(rawCustomRole)
		if err != nil {
			return access.Principal{}, err
		}
		return access.NewPrincipalWithCustomRole(id, roleName, customRole, superAdmin)
	}

	return access.NewPrincipal(id, roleName, superAdmin)
}

// customRoleFromClaim parses the "custom_role" claim. Grants are keyed by
// permission wire strings; unknown keys make the token invalid.
func customRoleFromClaim(raw any) (access.Role, error) {
	claim, ok := raw.(map[string]any)
	if !ok {
		return access.Role{}, fmt.Errorf("unexpected custom_role claim type %T", raw)
	}

	name, _ := claim["name"].(string)
	rawGrants, _ := claim["grants"].(map[string]any)

	grants := make(map[access.PermissionKey]bool, len(rawGrants))
	for keyString, rawGranted := range rawGrants {
		key, err := access.PermissionKeyFromString(keyString)
		if err != nil {
			return access.Role{}, err
		}
		granted, ok := rawGranted.(bool)
		if !ok {
			return access.Role{}, fmt.Errorf("custom_role grant %q is not a boolean", keyString)
		}
		grants[key] = granted
	}

	return access.NewRole(name, grants)
}

// principalFrom extracts the authenticated principal placed by the
// middleware.
func principalFrom(c echo.Context) (access.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(access.Principal)
	return principal, ok
}
