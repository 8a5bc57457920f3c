package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the bearer token and sets the tenant scope. Every
// downstream handler reads branch_id from locals and never trusts a branch
// identifier from the request itself.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string
	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		tokenString = strings.TrimPrefix(auth, "Bearer ")
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}
	if claims.BranchID == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Token carries no branch scope"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("branch_id", claims.BranchID)
	c.Locals("roles", claims.Roles)

	return c.Next()
}

// BranchID returns the tenant scope set by AuthMiddleware.
func BranchID(c *fiber.Ctx) string {
	if v, ok := c.Locals("branch_id").(string); ok {
		return v
	}
	return ""
}
