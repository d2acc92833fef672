package forms

import (
	"github.com/meharahmadft6/educonnect/api"
	"github.com/meharahmadft6/educonnect/models"
	"github.com/meharahmadft6/educonnect/session"
)

// StudentRegisterForm drives the student registration screen
type StudentRegisterForm struct {
	Form

	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	GradeLevel int    `json:"gradeLevel" validate:"required,min=1,max=12"`

	client *api.Client
	store  *session.Store
}

// NewStudentRegisterForm builds a registration form for the student role
func NewStudentRegisterForm(client *api.Client, store *session.Store) *StudentRegisterForm {
	return &StudentRegisterForm{client: client, store: store}
}

// Submit validates and registers the student. A token in the response
// signs the new account straight in.
func (f *StudentRegisterForm) Submit() {
	if !f.begin(f) {
		return
	}

	resp, err := f.client.Register(api.RegisterRequest{
		Role:     models.RoleStudent,
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
		StudentData: &models.StudentData{
			FirstName:  f.FirstName,
			LastName:   f.LastName,
			GradeLevel: f.GradeLevel,
		},
	})
	if err != nil {
		f.fail(submitMessage(err, "Registration failed"))
		return
	}

	if resp.Token != "" {
		if err := storeCredentials(f.store, resp); err != nil {
			f.fail("Could not save your session")
			return
		}
	}
	f.succeed()
}

// TeacherRegisterForm drives the teacher registration screen
type TeacherRegisterForm struct {
	Form

	Username          string `json:"username" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6"`
	FirstName         string `json:"firstName" validate:"required"`
	LastName          string `json:"lastName" validate:"required"`
	SubjectSpecialty  string `json:"subjectSpecialty" validate:"required"`
	YearsOfExperience int    `json:"yearsOfExperience" validate:"gte=0"`

	client *api.Client
	store  *session.Store
}

// NewTeacherRegisterForm builds a registration form for the teacher role
func NewTeacherRegisterForm(client *api.Client, store *session.Store) *TeacherRegisterForm {
	return &TeacherRegisterForm{client: client, store: store}
}

// Submit validates and registers the teacher
func (f *TeacherRegisterForm) Submit() {
	if !f.begin(f) {
		return
	}

	resp, err := f.client.Register(api.RegisterRequest{
		Role:     models.RoleTeacher,
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
		TeacherData: &models.TeacherData{
			FirstName:         f.FirstName,
			LastName:          f.LastName,
			SubjectSpecialty:  f.SubjectSpecialty,
			YearsOfExperience: f.YearsOfExperience,
		},
	})
	if err != nil {
		f.fail(submitMessage(err, "Registration failed"))
		return
	}

	if resp.Token != "" {
		if err := storeCredentials(f.store, resp); err != nil {
			f.fail("Could not save your session")
			return
		}
	}
	f.succeed()
}
