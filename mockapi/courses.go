package mockapi

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/meharahmadft6/educonnect/models"
)

// listCourses handles GET /courses
func (s *Server) listCourses(c *fiber.Ctx) error {
	var records []CourseRecord
	if err := s.db.Find(&records).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	courses := make([]models.Course, 0, len(records))
	for i := range records {
		courses = append(courses, records[i].toCourse())
	}
	return c.JSON(courses)
}

// getCourse handles GET /courses/:id
func (s *Server) getCourse(c *fiber.Ctx) error {
	var record CourseRecord
	if err := s.db.Where("id = ?", c.Params("id")).First(&record).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Course not found")
	}
	return c.JSON(record.toCourse())
}

// enroll handles POST /courses/:id/enroll
func (s *Server) enroll(c *fiber.Ctx) error {
	courseID := c.Params("id")

	var reqData struct {
		StudentID string `json:"studentId"`
	}
	if err := c.BodyParser(&reqData); err != nil || reqData.StudentID == "" {
		return errorResponse(c, fiber.StatusBadRequest, "studentId is required")
	}

	if err := s.db.Where("id = ?", courseID).First(&CourseRecord{}).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	err := s.db.Where("student_id = ? AND course_id = ?", reqData.StudentID, courseID).
		First(&Enrollment{}).Error
	if err == nil {
		return errorResponse(c, fiber.StatusBadRequest, "Already enrolled")
	}
	if err != gorm.ErrRecordNotFound {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to check enrollment")
	}

	enrollment := Enrollment{StudentID: reqData.StudentID, CourseID: courseID}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to enroll")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"enrolled": true, "courseId": courseID})
}

// updateProgress handles PUT /courses/:id/progress. Completions are
// idempotent per material; the enrollment row keeps the latest
// progress value the client reported.
func (s *Server) updateProgress(c *fiber.Ctx) error {
	courseID := c.Params("id")

	var reqData struct {
		UserID     string      `json:"userId"`
		MaterialID string      `json:"materialId"`
		Score      int         `json:"score"`
		Progress   int         `json:"progress"`
		Answers    map[int]int `json:"answers"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.UserID == "" || reqData.MaterialID == "" {
		return errorResponse(c, fiber.StatusBadRequest, "userId and materialId are required")
	}

	var record CourseRecord
	if err := s.db.Where("id = ?", courseID).First(&record).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Course not found")
	}
	course := record.toCourse()
	if course.MaterialIndex(reqData.MaterialID) < 0 {
		return errorResponse(c, fiber.StatusNotFound, "Material not found in course")
	}

	var answersJSON string
	if len(reqData.Answers) > 0 {
		encoded, err := json.Marshal(reqData.Answers)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid answers payload")
		}
		answersJSON = string(encoded)
	}

	// One completion row per material; repeats update the score
	var completion Completion
	err := s.db.Where("student_id = ? AND course_id = ? AND material_id = ?",
		reqData.UserID, courseID, reqData.MaterialID).First(&completion).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		completion = Completion{
			StudentID:  reqData.UserID,
			CourseID:   courseID,
			MaterialID: reqData.MaterialID,
			Score:      reqData.Score,
			Answers:    answersJSON,
		}
		if err := s.db.Create(&completion).Error; err != nil {
			log.Printf("Error saving completion: %v", err)
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to record progress")
		}
	case err == nil:
		completion.Score = reqData.Score
		if answersJSON != "" {
			completion.Answers = answersJSON
		}
		if err := s.db.Save(&completion).Error; err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to record progress")
		}
	default:
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to record progress")
	}

	progress := reqData.Progress
	if progress == 0 {
		// Quiz submissions omit progress; derive it from completions
		var count int64
		s.db.Model(&Completion{}).
			Where("student_id = ? AND course_id = ?", reqData.UserID, courseID).
			Count(&count)
		if total := len(course.Materials); total > 0 {
			progress = int(count) * 100 / total
		}
	}

	var enrollment Enrollment
	err = s.db.Where("student_id = ? AND course_id = ?", reqData.UserID, courseID).
		First(&enrollment).Error
	if err == gorm.ErrRecordNotFound {
		enrollment = Enrollment{StudentID: reqData.UserID, CourseID: courseID, Progress: progress}
		err = s.db.Create(&enrollment).Error
	} else if err == nil && progress > enrollment.Progress {
		enrollment.Progress = progress
		err = s.db.Save(&enrollment).Error
	}
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update enrollment")
	}

	return c.JSON(fiber.Map{"materialId": reqData.MaterialID, "progress": enrollment.Progress})
}
