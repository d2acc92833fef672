package dashboard

import (
	"github.com/meharahmadft6/educonnect/api"
	"github.com/meharahmadft6/educonnect/models"
)

// Filter narrows the course list by enrollment state
type Filter string

const (
	FilterAll        Filter = "All"
	FilterInProgress Filter = "In Progress"
	FilterCompleted  Filter = "Completed"
	FilterNew        Filter = "New"
)

// CoursesSection is the course catalog tab: the fetched list, the
// active filter and a per-course in-flight guard for enrollment.
type CoursesSection struct {
	client *api.Client

	courses   []models.Course
	filter    Filter
	loading   bool
	enrolling map[string]bool
}

// NewCoursesSection builds an unloaded section
func NewCoursesSection(client *api.Client) *CoursesSection {
	return &CoursesSection{
		client:    client,
		filter:    FilterAll,
		loading:   true,
		enrolling: make(map[string]bool),
	}
}

// Load fetches the catalog. Enrollment state is not part of the listing
// payload, so every course starts out un-enrolled with zero progress.
// A failed fetch leaves the section loading so the next visit retries.
func (s *CoursesSection) Load() error {
	courses, err := s.client.ListCourses()
	if err != nil {
		return err
	}
	for i := range courses {
		courses[i].Enrolled = false
		courses[i].Progress = 0
	}
	s.courses = courses
	s.loading = false
	return nil
}

// Loading reports whether a catalog fetch is still needed
func (s *CoursesSection) Loading() bool { return s.loading }

// SetFilter selects the active filter
func (s *CoursesSection) SetFilter(f Filter) { s.filter = f }

// Courses returns the list narrowed by the active filter
func (s *CoursesSection) Courses() []models.Course {
	if s.filter == FilterAll {
		return s.courses
	}

	var out []models.Course
	for _, c := range s.courses {
		switch s.filter {
		case FilterInProgress:
			if c.Enrolled && c.Progress > 0 && c.Progress < 100 {
				out = append(out, c)
			}
		case FilterCompleted:
			if c.Enrolled && c.Progress == 100 {
				out = append(out, c)
			}
		case FilterNew:
			if !c.Enrolled || c.Progress == 0 {
				out = append(out, c)
			}
		}
	}
	return out
}

// Enrolling reports whether an enrollment request for the course is in
// flight; the UI disables the trigger for its duration
func (s *CoursesSection) Enrolling(courseID string) bool {
	return s.enrolling[courseID]
}

// Enroll enrolls the student in a course and marks it enrolled locally
// on success. A request already in flight for the same course is not
// repeated.
func (s *CoursesSection) Enroll(courseID, studentID string) error {
	if s.enrolling[courseID] {
		return nil
	}
	s.enrolling[courseID] = true
	defer func() { s.enrolling[courseID] = false }()

	if err := s.client.Enroll(courseID, studentID); err != nil {
		return err
	}

	for i := range s.courses {
		if s.courses[i].ID == courseID {
			s.courses[i].Enrolled = true
			s.courses[i].Progress = 0
		}
	}
	return nil
}
