// Package mockapi is a self-contained stand-in for the EduConnect
// platform API. It exists for local development and for exercising the
// client end to end; the real server is an external system.
package mockapi

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/meharahmadft6/educonnect/models"
)

// Account is a login identity
type Account struct {
	ID           string `gorm:"primaryKey"`
	Username     string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
}

// Profile is the role-specific document returned by /students/:id
type Profile struct {
	ID        string `gorm:"primaryKey"`
	AccountID string `gorm:"index;not null"`
	FirstName string
	LastName  string
	Avatar    string

	GradeLevel        int
	SubjectSpecialty  string
	YearsOfExperience int
}

// CourseRecord stores a course with its materials serialized as JSON,
// the same way the platform embeds them in the course document
type CourseRecord struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Description string
	Thumbnail   string
	Level       string
	Category    string
	Duration    int
	Teachers    string // JSON array of TeacherRef
	Materials   string // JSON array of Material
}

// Enrollment tracks a student's progress in a course
type Enrollment struct {
	gorm.Model
	StudentID string `gorm:"index;not null"`
	CourseID  string `gorm:"index;not null"`
	Progress  int    `gorm:"default:0"`
}

// Completion is one finished material
type Completion struct {
	gorm.Model
	StudentID  string `gorm:"index;not null"`
	CourseID   string `gorm:"index;not null"`
	MaterialID string `gorm:"index;not null"`
	Score      int
	Answers    string // JSON map of question index to option index, quizzes only
}

// openDB connects an in-memory sqlite database and runs migrations.
// A single connection keeps every session on the same in-memory store.
func openDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&Account{},
		&Profile{},
		&CourseRecord{},
		&Enrollment{},
		&Completion{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// toCourse decodes a record into the wire shape
func (r *CourseRecord) toCourse() models.Course {
	course := models.Course{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
		Level:       r.Level,
		Category:    r.Category,
		Duration:    r.Duration,
	}
	if err := json.Unmarshal([]byte(r.Teachers), &course.Teachers); err != nil {
		log.Printf("mockapi: bad teachers payload on course %s: %v", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.Materials), &course.Materials); err != nil {
		log.Printf("mockapi: bad materials payload on course %s: %v", r.ID, err)
	}
	return course
}

// seedCourses loads the demo catalog
func seedCourses(db *gorm.DB) error {
	for _, course := range demoCourses() {
		teachers, err := json.Marshal(course.Teachers)
		if err != nil {
			return err
		}
		materials, err := json.Marshal(course.Materials)
		if err != nil {
			return err
		}
		record := CourseRecord{
			ID:          course.ID,
			Title:       course.Title,
			Description: course.Description,
			Thumbnail:   course.Thumbnail,
			Level:       course.Level,
			Category:    course.Category,
			Duration:    course.Duration,
			Teachers:    string(teachers),
			Materials:   string(materials),
		}
		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

// demoCourses is the development catalog: one course per material type mix
func demoCourses() []models.Course {
	return []models.Course{
		{
			ID:          uuid.NewString(),
			Title:       "Web Development Fundamentals",
			Description: "HTML, CSS and the basics of building for the browser.",
			Thumbnail:   "/images/courses/webdev.jpg",
			Level:       "Beginner",
			Category:    "Programming",
			Duration:    6,
			Teachers:    []models.TeacherRef{{ID: uuid.NewString(), Name: "Sarah Johnson"}},
			Materials: []models.Material{
				{ID: uuid.NewString(), Type: models.MaterialVideo, Title: "Introduction", Content: "https://videos.example.com/webdev/intro"},
				{ID: uuid.NewString(), Type: models.MaterialText, Title: "How the Web Works", Content: "<h1>How the Web Works</h1><p>Clients, servers and HTTP.</p>"},
				{ID: uuid.NewString(), Type: models.MaterialPDF, Title: "HTML Reference", Content: "https://files.example.com/webdev/html-reference.pdf"},
				{
					ID: uuid.NewString(), Type: models.MaterialQuiz, Title: "Checkpoint Quiz",
					Quiz: &models.Quiz{Questions: []models.Question{
						{Question: "What does HTML stand for?", Options: []string{"HyperText Markup Language", "HighText Machine Language", "Hyperlink Text Mode Language"}},
						{Question: "Which tag creates a hyperlink?", Options: []string{"<link>", "<a>", "<href>"}},
					}},
				},
			},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Introduction to Data Science",
			Description: "From spreadsheets to models: a first tour of data work.",
			Thumbnail:   "/images/courses/datascience.jpg",
			Level:       "Intermediate",
			Category:    "Data",
			Duration:    8,
			Teachers:    []models.TeacherRef{{ID: uuid.NewString(), Name: "Michael Chen"}},
			Materials: []models.Material{
				{ID: uuid.NewString(), Type: models.MaterialVideo, Title: "What is Data Science?", Content: "https://videos.example.com/ds/what-is-ds"},
				{ID: uuid.NewString(), Type: models.MaterialText, Title: "Working with Tables", Content: "<h1>Working with Tables</h1><p>Rows, columns and tidy data.</p>"},
			},
		},
	}
}
