// Package course drives a learner through a course's materials: it
// records completions, sequences quiz submission, and derives the
// progress percentage shown in the UI.
package course

import (
	"errors"
	"log/slog"
	"math"

	"github.com/meharahmadft6/educonnect/api"
	"github.com/meharahmadft6/educonnect/models"
)

// nominalScore is the fixed score sent with every completion and quiz
// submission; real grading happens server side.
const nominalScore = 100

var (
	// ErrNoCourse is returned when an operation runs before Load succeeded
	ErrNoCourse = errors.New("course: no course loaded")

	// ErrNotQuiz is returned when SubmitQuiz runs on a non-quiz material
	ErrNotQuiz = errors.New("course: current material is not a quiz")
)

// ProgressAPI is the slice of the platform API the engine needs.
// *api.Client satisfies it.
type ProgressAPI interface {
	GetCourse(id string) (*models.Course, error)
	UpdateProgress(courseID string, update api.ProgressUpdate) (*api.ProgressAck, error)
}

// Engine tracks the learner's position in one course. Completions are
// session-scoped and only ever grow; the server's stored progress is
// the durable source of truth across reloads.
type Engine struct {
	client ProgressAPI
	userID string

	course    *models.Course
	current   *models.Material
	completed map[string]struct{}
	answers   map[int]int

	// completing blocks a second completion request while one is in
	// flight; the form controllers get the same guard from their
	// submitting state
	completing bool
}

// NewEngine builds an engine for the given learner
func NewEngine(client ProgressAPI, userID string) *Engine {
	return &Engine{
		client:    client,
		userID:    userID,
		completed: make(map[string]struct{}),
		answers:   make(map[int]int),
	}
}

// Load fetches the course and points the engine at its first material.
// On failure the engine stays unloaded and the caller is expected to
// fall back to the course list.
func (e *Engine) Load(courseID string) error {
	fetched, err := e.client.GetCourse(courseID)
	if err != nil {
		return err
	}

	e.course = fetched
	e.completed = make(map[string]struct{})
	e.answers = make(map[int]int)
	e.current = nil
	if len(fetched.Materials) > 0 {
		e.current = &fetched.Materials[0]
	}
	return nil
}

// Course returns the loaded course, nil before Load
func (e *Engine) Course() *models.Course { return e.course }

// Current returns the current material pointer
func (e *Engine) Current() *models.Material { return e.current }

// Select makes m the current material and discards any quiz answers
// selected on the previous one
func (e *Engine) Select(m *models.Material) {
	e.current = m
	e.answers = make(map[int]int)
}

// IsCompleted reports whether the material was finished this session
func (e *Engine) IsCompleted(materialID string) bool {
	_, ok := e.completed[materialID]
	return ok
}

// CompletedCount returns the size of the completion set
func (e *Engine) CompletedCount() int { return len(e.completed) }

// Progress derives the display percentage from the completion set
func (e *Engine) Progress() int {
	if e.course == nil || len(e.course.Materials) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(e.completed)) / float64(len(e.course.Materials))))
}

// CompleteCurrent reports the current material as finished. On success
// the material joins the completion set and, when a next material
// exists, the pointer advances to it. On failure all state is left
// unchanged. A completion already in flight makes this a no-op.
func (e *Engine) CompleteCurrent() error {
	if e.course == nil || e.current == nil {
		return ErrNoCourse
	}
	if e.completing {
		return nil
	}
	e.completing = true
	defer func() { e.completing = false }()

	total := len(e.course.Materials)
	progress := int(math.Round(100 * float64(len(e.completed)+1) / float64(total)))

	ack, err := e.client.UpdateProgress(e.course.ID, api.ProgressUpdate{
		UserID:     e.userID,
		MaterialID: e.current.ID,
		Score:      nominalScore,
		Progress:   progress,
	})
	if err != nil {
		return err
	}

	e.completed[e.current.ID] = struct{}{}
	if ack != nil && ack.Progress != 0 && ack.Progress != e.Progress() {
		slog.Debug("server progress differs from derived value",
			"server", ack.Progress, "derived", e.Progress())
	}

	if idx := e.course.MaterialIndex(e.current.ID); idx >= 0 && idx < total-1 {
		e.Select(&e.course.Materials[idx+1])
	}
	return nil
}

// SelectAnswer records the chosen option for a question on the current
// quiz, overwriting any earlier choice for that question
func (e *Engine) SelectAnswer(questionIndex, optionIndex int) {
	e.answers[questionIndex] = optionIndex
}

// Answer returns the recorded option for a question, with ok false when
// none is selected yet
func (e *Engine) Answer(questionIndex int) (int, bool) {
	opt, ok := e.answers[questionIndex]
	return opt, ok
}

// SubmitQuiz sends the selected answers for the current quiz material.
// Success chains into CompleteCurrent; failure reports the error and
// does not chain.
func (e *Engine) SubmitQuiz() error {
	if e.course == nil || e.current == nil {
		return ErrNoCourse
	}
	if e.current.Type != models.MaterialQuiz {
		return ErrNotQuiz
	}

	answers := make(map[int]int, len(e.answers))
	for q, o := range e.answers {
		answers[q] = o
	}

	_, err := e.client.UpdateProgress(e.course.ID, api.ProgressUpdate{
		UserID:     e.userID,
		MaterialID: e.current.ID,
		Score:      nominalScore,
		Answers:    answers,
	})
	if err != nil {
		return err
	}

	return e.CompleteCurrent()
}
