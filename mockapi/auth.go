package mockapi

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/meharahmadft6/educonnect/models"
)

type registerRequest struct {
	Role        string              `json:"role"`
	Username    string              `json:"username"`
	Email       string              `json:"email"`
	Password    string              `json:"password"`
	StudentData *models.StudentData `json:"studentData"`
	TeacherData *models.TeacherData `json:"teacherData"`
}

// register handles POST /auth/register
func (s *Server) register(c *fiber.Ctx) error {
	var reqData registerRequest
	if err := c.BodyParser(&reqData); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.Role != models.RoleStudent && reqData.Role != models.RoleTeacher {
		return errorResponse(c, fiber.StatusBadRequest, "Role must be student or teacher")
	}
	if reqData.Email == "" || reqData.Password == "" || reqData.Username == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Username, email and password are required")
	}

	// Check if email already exists
	if err := s.db.Where("email = ?", reqData.Email).First(&Account{}).Error; err == nil {
		return errorResponse(c, fiber.StatusConflict, "Email is already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), s.saltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to process your request")
	}

	account := Account{
		ID:           uuid.NewString(),
		Username:     reqData.Username,
		Email:        reqData.Email,
		PasswordHash: string(hashedPassword),
		Role:         reqData.Role,
	}

	profile := Profile{ID: uuid.NewString(), AccountID: account.ID}
	switch reqData.Role {
	case models.RoleStudent:
		if reqData.StudentData == nil {
			return errorResponse(c, fiber.StatusBadRequest, "studentData is required for the student role")
		}
		profile.FirstName = reqData.StudentData.FirstName
		profile.LastName = reqData.StudentData.LastName
		profile.GradeLevel = reqData.StudentData.GradeLevel
	case models.RoleTeacher:
		if reqData.TeacherData == nil {
			return errorResponse(c, fiber.StatusBadRequest, "teacherData is required for the teacher role")
		}
		profile.FirstName = reqData.TeacherData.FirstName
		profile.LastName = reqData.TeacherData.LastName
		profile.SubjectSpecialty = reqData.TeacherData.SubjectSpecialty
		profile.YearsOfExperience = reqData.TeacherData.YearsOfExperience
	}

	if err := s.db.Create(&account).Error; err != nil {
		log.Printf("Error saving account: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to register user")
	}
	if err := s.db.Create(&profile).Error; err != nil {
		log.Printf("Error saving profile: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	token, err := s.generateToken(profile.ID, account.Role, account.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":  token,
		"role":   account.Role,
		"userId": profile.ID,
	})
}

// login handles POST /auth/login
func (s *Server) login(c *fiber.Ctx) error {
	var reqData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var account Account
	if err := s.db.Where("email = ?", reqData.Email).First(&account).Error; err != nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(reqData.Password)); err != nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	var profile Profile
	if err := s.db.Where("account_id = ?", account.ID).First(&profile).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Profile not found for account")
	}

	token, err := s.generateToken(profile.ID, account.Role, account.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to log in")
	}

	return c.JSON(fiber.Map{
		"token":  token,
		"role":   account.Role,
		"userId": profile.ID,
	})
}

// currentProfile handles GET /auth/profile
func (s *Server) currentProfile(c *fiber.Ctx) error {
	profileID, _ := c.Locals("userId").(string)

	var profile Profile
	if err := s.db.Where("id = ?", profileID).First(&profile).Error; err != nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Profile not found")
	}
	return c.JSON(s.profileDocument(&profile))
}

// profileDocument builds the wire shape with the populated account
func (s *Server) profileDocument(profile *Profile) models.StudentProfile {
	doc := models.StudentProfile{
		ID:                profile.ID,
		FirstName:         profile.FirstName,
		LastName:          profile.LastName,
		GradeLevel:        profile.GradeLevel,
		Profile:           profile.Avatar,
		SubjectSpecialty:  profile.SubjectSpecialty,
		YearsOfExperience: profile.YearsOfExperience,
	}

	var account Account
	if err := s.db.Where("id = ?", profile.AccountID).First(&account).Error; err == nil {
		doc.User = &models.User{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
			Role:     account.Role,
		}
	}
	return doc
}
