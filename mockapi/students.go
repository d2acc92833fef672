package mockapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// getStudent handles GET /students/:id
func (s *Server) getStudent(c *fiber.Ctx) error {
	var profile Profile
	if err := s.db.Where("id = ?", c.Params("id")).First(&profile).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Student not found")
	}
	return c.JSON(s.profileDocument(&profile))
}

// updateStudent handles PUT /students/:id (multipart). Only the caller's
// own profile may be edited.
func (s *Server) updateStudent(c *fiber.Ctx) error {
	profileID := c.Params("id")
	if callerID, _ := c.Locals("userId").(string); callerID != profileID {
		return errorResponse(c, fiber.StatusForbidden, "You can only edit your own profile")
	}

	var profile Profile
	if err := s.db.Where("id = ?", profileID).First(&profile).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Student not found")
	}

	if v := c.FormValue("firstName"); v != "" {
		profile.FirstName = v
	}
	if v := c.FormValue("lastName"); v != "" {
		profile.LastName = v
	}
	if v := c.FormValue("gradeLevel"); v != "" {
		grade, err := strconv.Atoi(v)
		if err != nil || grade < 1 || grade > 12 {
			return errorResponse(c, fiber.StatusBadRequest, "Grade level must be between 1 and 12")
		}
		profile.GradeLevel = grade
	}

	// The avatar is accepted but only its name is kept; the mock has no
	// file storage behind it
	if file, err := c.FormFile("profile"); err == nil && file != nil {
		profile.Avatar = "/uploads/" + file.Filename
	}

	if err := s.db.Save(&profile).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return c.JSON(s.profileDocument(&profile))
}
