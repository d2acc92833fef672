package forms

import (
	"io"

	"github.com/meharahmadft6/educonnect/api"
	"github.com/meharahmadft6/educonnect/models"
)

// ProfileEditForm drives the edit-profile modal. Avatar is optional;
// when set it is uploaded alongside the field values.
type ProfileEditForm struct {
	Form

	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	GradeLevel int    `json:"gradeLevel" validate:"required,min=1,max=12"`

	AvatarName string    `json:"-"`
	Avatar     io.Reader `json:"-"`

	client    *api.Client
	studentID string
	updated   *models.StudentProfile
}

// NewProfileEditForm builds an edit form pre-filled from the current profile
func NewProfileEditForm(client *api.Client, current *models.StudentProfile) *ProfileEditForm {
	f := &ProfileEditForm{client: client}
	if current != nil {
		f.studentID = current.ID
		f.FirstName = current.FirstName
		f.LastName = current.LastName
		f.GradeLevel = current.GradeLevel
	}
	if f.GradeLevel == 0 {
		f.GradeLevel = 1
	}
	return f
}

// Submit validates and sends the multipart update
func (f *ProfileEditForm) Submit() {
	if !f.begin(f) {
		return
	}

	updated, err := f.client.UpdateStudent(f.studentID, api.ProfileUpdate{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		GradeLevel: f.GradeLevel,
		AvatarName: f.AvatarName,
		Avatar:     f.Avatar,
	})
	if err != nil {
		f.fail(submitMessage(err, "Failed to update profile. Please try again."))
		return
	}

	f.updated = updated
	f.succeed()
}

// Updated returns the profile document from a successful submission
func (f *ProfileEditForm) Updated() *models.StudentProfile { return f.updated }
