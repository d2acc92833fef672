package models

// Role values used by the platform
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// User is the account record behind both roles
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// StudentProfile is the student document returned by /students/:id and
// /auth/profile. User is the populated account reference.
type StudentProfile struct {
	ID         string `json:"_id"`
	User       *User  `json:"userId,omitempty"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	GradeLevel int    `json:"gradeLevel,omitempty"`
	Profile    string `json:"profile,omitempty"` // avatar URL

	// Teacher-only fields; the profile endpoint returns one shape for both roles
	SubjectSpecialty  string `json:"subjectSpecialty,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`
}

// FullName joins first and last name for display
func (p *StudentProfile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// StudentData is the role-specific payload sent on student registration
type StudentData struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	GradeLevel int    `json:"gradeLevel"`
}

// TeacherData is the role-specific payload sent on teacher registration
type TeacherData struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	SubjectSpecialty  string `json:"subjectSpecialty"`
	YearsOfExperience int    `json:"yearsOfExperience"`
}
