package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Input length limits for path and query parameters.
const (
	MaxContentIDLen = 64
	MaxCategoryLen  = 32
)

// contentIDRe matches catalog slugs: alphanumeric, dash, underscore.
var contentIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateContentID checks that a content id is a well-formed catalog slug.
func ValidateContentID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "content id is required"
	}
	if len(id) > MaxContentIDLen {
		return "", "content id must be at most 64 characters"
	}
	if !contentIDRe.MatchString(id) {
		return "", "content id contains invalid characters"
	}
	return id, ""
}

// ValidateCategory trims a category filter and bounds its length. Category
// names carry spaces and accents, so no charset check beyond control
// characters.
func ValidateCategory(category string) (string, string) {
	category = strings.TrimSpace(category)
	if len(category) > MaxCategoryLen {
		return "", "category must be at most 32 characters"
	}
	for _, r := range category {
		if r < 0x20 {
			return "", "category contains invalid characters"
		}
	}
	return category, ""
}
