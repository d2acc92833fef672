// Package dashboard holds the dashboard shell and its section state:
// tab navigation, the course catalog, the teacher directory and the
// session-local chat threads.
package dashboard

// Tab identifies a dashboard section
type Tab string

const (
	TabProfile  Tab = "profile"
	TabCourses  Tab = "courses"
	TabTeachers Tab = "teachers"
	TabChats    Tab = "chats"
)

// Tabs lists the sections in sidebar order
var Tabs = []Tab{TabProfile, TabCourses, TabTeachers, TabChats}

// Label returns the sidebar label for a tab
func (t Tab) Label() string {
	switch t {
	case TabProfile:
		return "Profile"
	case TabCourses:
		return "Courses"
	case TabTeachers:
		return "Teachers"
	case TabChats:
		return "Messages"
	default:
		return string(t)
	}
}

// Shell is the dashboard frame. The active tab is the only state shared
// across sections.
type Shell struct {
	active Tab
}

// NewShell starts on the profile tab
func NewShell() *Shell {
	return &Shell{active: TabProfile}
}

// Active returns the selected tab
func (s *Shell) Active() Tab { return s.active }

// SetActive switches sections. Unknown tabs fall back to profile.
func (s *Shell) SetActive(t Tab) {
	switch t {
	case TabProfile, TabCourses, TabTeachers, TabChats:
		s.active = t
	default:
		s.active = TabProfile
	}
}
