package api

import (
	"github.com/meharahmadft6/educonnect/models"
)

// RegisterRequest is the body for POST /auth/register. Exactly one of
// StudentData / TeacherData is set, matching Role.
type RegisterRequest struct {
	Role        string              `json:"role"`
	Username    string              `json:"username"`
	Email       string              `json:"email"`
	Password    string              `json:"password"`
	StudentData *models.StudentData `json:"studentData,omitempty"`
	TeacherData *models.TeacherData `json:"teacherData,omitempty"`
}

// AuthResponse is returned by both login and registration
type AuthResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

// Register creates a new account
func (c *Client) Register(reqData RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(c.http.R().SetBody(reqData), "POST", "/auth/register", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token
func (c *Client) Login(email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var out AuthResponse
	if err := c.do(c.http.R().SetBody(body), "POST", "/auth/login", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the current account's profile. A 401 comes back as a
// KindAuth error, which callers treat as "redirect to login".
func (c *Client) Profile() (*models.StudentProfile, error) {
	var out models.StudentProfile
	if err := c.do(c.http.R(), "GET", "/auth/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
