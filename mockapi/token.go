package mockapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// generateToken issues an HS256 JWT for the profile. The claims mirror
// what the platform puts in its tokens, so the client's unverified
// claims parse sees the same fields.
func (s *Server) generateToken(profileID, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": profileID,
		"role":   role,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtKey))
}

// requireAuth checks the Bearer token and stores the caller's profile
// id and role in the request context
func (s *Server) requireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return errorResponse(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtKey), nil
	})
	if err != nil || !token.Valid {
		return errorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Invalid token claims")
	}

	if userID, ok := claims["userId"].(string); ok {
		c.Locals("userId", userID)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}
	return c.Next()
}

// errorResponse writes the platform's error envelope
func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
