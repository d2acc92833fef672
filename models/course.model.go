package models

// Material content types
const (
	MaterialVideo = "video"
	MaterialText  = "text"
	MaterialPDF   = "pdf"
	MaterialQuiz  = "quiz"
)

// Course represents a learning course as served by the platform API
type Course struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Materials   []Material   `json:"materials"`
	Teachers    []TeacherRef `json:"teachers"`
	Thumbnail   string       `json:"thumbnail"`
	Duration    int          `json:"duration"` // duration in weeks
	Level       string       `json:"level"`
	Category    string       `json:"category"`

	// Learner-local fields, not part of the course document
	Enrolled bool `json:"enrolled,omitempty"`
	Progress int  `json:"progress,omitempty"`
}

// MaterialIndex returns the position of the material with the given id,
// or -1 when it is not part of the course
func (c *Course) MaterialIndex(materialID string) int {
	for i := range c.Materials {
		if c.Materials[i].ID == materialID {
			return i
		}
	}
	return -1
}

// Material is one unit of course content. Content holds a URL for video
// and pdf materials and an HTML body for text; Quiz is set only when
// Type is "quiz".
type Material struct {
	ID      string `json:"_id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Quiz    *Quiz  `json:"quiz,omitempty"`
}

// Quiz is an embedded set of questions. Correct answers are never sent
// to the client; scoring happens server side.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Question is a single quiz prompt with its ordered options
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// TeacherRef is the course's embedded instructor reference
type TeacherRef struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}
