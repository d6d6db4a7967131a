package handlers

import (
	"employee-records-backend/app/server/models"
	"regexp"
	"slices"
	"strings"
)

var (
	imageURLPattern = regexp.MustCompile(`^(http|https)://[^ "]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func isValidRole(role string) bool {
	return role == models.RoleAdmin || role == models.RoleMember
}

func isValidGender(gender string) bool {
	return gender == models.GenderMale || gender == models.GenderFemale
}

func isValidCourse(course string) bool {
	return slices.Contains(models.Courses, course)
}

func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func isValidImageURL(url string) bool {
	return imageURLPattern.MatchString(url)
}
