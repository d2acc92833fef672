package api

import (
	"fmt"
	"io"
	"strconv"

	"github.com/meharahmadft6/educonnect/models"
)

// GetStudent fetches a student document by id
func (c *Client) GetStudent(id string) (*models.StudentProfile, error) {
	var out models.StudentProfile
	if err := c.do(c.http.R(), "GET", "/students/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileUpdate carries the editable profile fields. Avatar, when set,
// is streamed as a multipart file part named "profile".
type ProfileUpdate struct {
	FirstName  string
	LastName   string
	GradeLevel int

	AvatarName string
	Avatar     io.Reader
}

// UpdateStudent sends a multipart PUT to /students/:id and returns the
// updated document
func (c *Client) UpdateStudent(id string, update ProfileUpdate) (*models.StudentProfile, error) {
	req := c.http.R().SetFormData(map[string]string{
		"firstName":  update.FirstName,
		"lastName":   update.LastName,
		"gradeLevel": strconv.Itoa(update.GradeLevel),
	})
	if update.Avatar != nil {
		req.SetFileReader("profile", update.AvatarName, update.Avatar)
	}

	var out models.StudentProfile
	if err := c.do(req, "PUT", fmt.Sprintf("/students/%s", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
