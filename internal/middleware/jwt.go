package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/smarthire/placement-api/internal/utils"
)

// Roles recognised by the placement API. Tokens carrying anything else are
// treated as roleless and fail the RBAC check downstream.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// JWTProtected validates HS256 bearer tokens and binds the authenticated
// identity to the request. Every protected route needs a numeric subject, so
// a token without one is rejected here rather than in each handler.
func JWTProtected(secret string) fiber.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}

	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "missing bearer token")
		}

		token, err := parser.Parse(tokenString, keyFunc)
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		userID, ok := subjectFromClaims(claims)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "token has no subject")
		}

		c.Locals("user_id", userID)
		if role := roleFromClaims(claims); role != "" {
			c.Locals("user_role", role)
		}

		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// subjectFromClaims accepts "sub", "user_id" or "id", in that order. JSON
// numbers arrive as float64; issuers that stringify IDs are tolerated.
func subjectFromClaims(claims jwt.MapClaims) (uint, bool) {
	for _, key := range []string{"sub", "user_id", "id"} {
		value, ok := claims[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case float64:
			if v >= 0 {
				return uint(v), true
			}
		case string:
			if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
				return uint(parsed), true
			}
		}
	}
	return 0, false
}

func roleFromClaims(claims jwt.MapClaims) string {
	value, ok := claims["role"]
	if !ok {
		if list, ok := claims["roles"].([]interface{}); ok && len(list) > 0 {
			value = list[0]
		}
	}

	role, _ := value.(string)
	switch role = strings.ToLower(strings.TrimSpace(role)); role {
	case RoleStudent, RoleAdmin:
		return role
	default:
		return ""
	}
}
