package dashboard

import "github.com/meharahmadft6/educonnect/models"

// The teacher directory is not served by the API yet; the section shows
// a fixed roster until the teachers endpoint lands.
var teacherDirectory = []models.TeacherInfo{
	{ID: 1, Name: "Sarah Johnson", Subject: "Web Development", Avatar: "/images/teachers/teacher1.jpg", Rating: 4.8, Courses: 12, Online: true},
	{ID: 2, Name: "Michael Chen", Subject: "Data Science", Avatar: "/images/teachers/teacher2.jpg", Rating: 4.6, Courses: 8, Online: false},
	{ID: 3, Name: "David Wilson", Subject: "Mobile Development", Avatar: "/images/teachers/teacher3.jpg", Rating: 4.9, Courses: 15, Online: true},
	{ID: 4, Name: "Emily Rodriguez", Subject: "UI/UX Design", Avatar: "/images/teachers/teacher4.jpg", Rating: 4.7, Courses: 10, Online: false},
}

// TeachersSection is the instructor directory tab
type TeachersSection struct {
	teachers []models.TeacherInfo
}

// NewTeachersSection returns the directory section
func NewTeachersSection() *TeachersSection {
	return &TeachersSection{teachers: teacherDirectory}
}

// Teachers returns the directory entries
func (s *TeachersSection) Teachers() []models.TeacherInfo { return s.teachers }
