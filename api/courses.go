package api

import (
	"github.com/meharahmadft6/educonnect/models"
)

// ProgressUpdate is the body for PUT /courses/:id/progress. Answers is
// present only for quiz submissions and maps question index to the
// chosen option index.
type ProgressUpdate struct {
	UserID     string      `json:"userId"`
	MaterialID string      `json:"materialId"`
	Score      int         `json:"score"`
	Progress   int         `json:"progress,omitempty"`
	Answers    map[int]int `json:"answers,omitempty"`
}

// ProgressAck is the server's acknowledgment of a progress update
type ProgressAck struct {
	MaterialID string `json:"materialId"`
	Progress   int    `json:"progress"`
}

// ListCourses fetches the full course catalog
func (c *Client) ListCourses() ([]models.Course, error) {
	var out []models.Course
	if err := c.do(c.http.R(), "GET", "/courses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCourse fetches one course with its full material list
func (c *Client) GetCourse(id string) (*models.Course, error) {
	var out models.Course
	if err := c.do(c.http.R(), "GET", "/courses/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Enroll enrolls a student in a course
func (c *Client) Enroll(courseID, studentID string) error {
	body := map[string]string{"studentId": studentID}
	return c.do(c.http.R().SetBody(body), "POST", "/courses/"+courseID+"/enroll", nil)
}

// UpdateProgress records a material completion or quiz submission and
// returns the server's acknowledgment
func (c *Client) UpdateProgress(courseID string, update ProgressUpdate) (*ProgressAck, error) {
	var out ProgressAck
	if err := c.do(c.http.R().SetBody(update), "PUT", "/courses/"+courseID+"/progress", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
