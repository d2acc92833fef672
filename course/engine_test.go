package course

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meharahmadft6/educonnect/api"
	"github.com/meharahmadft6/educonnect/models"
)

// stubAPI records progress updates and can be told to fail
type stubAPI struct {
	course  *models.Course
	loadErr error

	updates   []api.ProgressUpdate
	updateErr error

	// onUpdate runs inside UpdateProgress, used to provoke re-entrancy
	onUpdate func()
}

func (s *stubAPI) GetCourse(id string) (*models.Course, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.course, nil
}

func (s *stubAPI) UpdateProgress(courseID string, update api.ProgressUpdate) (*api.ProgressAck, error) {
	s.updates = append(s.updates, update)
	if s.onUpdate != nil {
		s.onUpdate()
	}
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &api.ProgressAck{MaterialID: update.MaterialID, Progress: update.Progress}, nil
}

func testCourse() *models.Course {
	return &models.Course{
		ID:    "course-1",
		Title: "Web Development Fundamentals",
		Materials: []models.Material{
			{ID: "mat-a", Type: models.MaterialVideo, Title: "A"},
			{ID: "mat-b", Type: models.MaterialText, Title: "B"},
			{ID: "mat-c", Type: models.MaterialQuiz, Title: "C", Quiz: &models.Quiz{
				Questions: []models.Question{
					{Question: "q1", Options: []string{"x", "y", "z"}},
					{Question: "q2", Options: []string{"x", "y"}},
				},
			}},
		},
	}
}

func newTestEngine(t *testing.T, stub *stubAPI) *Engine {
	t.Helper()
	engine := NewEngine(stub, "student-1")
	require.NoError(t, engine.Load("course-1"))
	return engine
}

func TestLoadPointsAtFirstMaterial(t *testing.T) {
	engine := newTestEngine(t, &stubAPI{course: testCourse()})

	require.NotNil(t, engine.Current())
	assert.Equal(t, "mat-a", engine.Current().ID)
	assert.Equal(t, 0, engine.Progress())
}

func TestLoadFailureLeavesEngineUnloaded(t *testing.T) {
	stub := &stubAPI{loadErr: &api.Error{Kind: api.KindNetwork, Message: "connection refused"}}
	engine := NewEngine(stub, "student-1")

	err := engine.Load("course-1")
	require.Error(t, err)
	assert.Nil(t, engine.Course())
	assert.Nil(t, engine.Current())
}

func TestCompleteAdvancesToNextMaterial(t *testing.T) {
	stub := &stubAPI{course: testCourse()}
	engine := newTestEngine(t, stub)

	require.NoError(t, engine.CompleteCurrent())

	assert.True(t, engine.IsCompleted("mat-a"))
	assert.Equal(t, "mat-b", engine.Current().ID)
	require.Len(t, stub.updates, 1)
	assert.Equal(t, "mat-a", stub.updates[0].MaterialID)
	assert.Equal(t, 100, stub.updates[0].Score)
	// one of three done at the time of the request
	assert.Equal(t, 33, stub.updates[0].Progress)
}

func TestCompleteAllMaterialsReachesFullProgress(t *testing.T) {
	stub := &stubAPI{course: testCourse()}
	engine := newTestEngine(t, stub)

	for range testCourse().Materials {
		require.NoError(t, engine.CompleteCurrent())
	}

	assert.Equal(t, 100, engine.Progress())
	assert.Equal(t, 3, engine.CompletedCount())
	// completing the last material does not advance past it
	assert.Equal(t, "mat-c", engine.Current().ID)
}

func TestCompleteFailureLeavesStateUnchanged(t *testing.T) {
	stub := &stubAPI{
		course:    testCourse(),
		updateErr: &api.Error{Kind: api.KindNetwork, Message: "timeout"},
	}
	engine := newTestEngine(t, stub)

	err := engine.CompleteCurrent()
	require.Error(t, err)

	assert.Equal(t, 0, engine.CompletedCount())
	assert.Equal(t, "mat-a", engine.Current().ID)
	assert.Equal(t, 0, engine.Progress())
}

func TestCompleteWhileInFlightIsNoOp(t *testing.T) {
	stub := &stubAPI{course: testCourse()}
	engine := newTestEngine(t, stub)

	stub.onUpdate = func() {
		// a second trigger arriving mid-request must not issue another call
		require.NoError(t, engine.CompleteCurrent())
	}
	require.NoError(t, engine.CompleteCurrent())

	assert.Len(t, stub.updates, 1)
}

func TestSelectAnswerUpserts(t *testing.T) {
	engine := newTestEngine(t, &stubAPI{course: testCourse()})
	crs := engine.Course()
	engine.Select(&crs.Materials[2])

	engine.SelectAnswer(0, 1)
	engine.SelectAnswer(0, 2)

	got, ok := engine.Answer(0)
	require.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = engine.Answer(1)
	assert.False(t, ok)
}

func TestSelectingMaterialClearsAnswers(t *testing.T) {
	engine := newTestEngine(t, &stubAPI{course: testCourse()})
	crs := engine.Course()

	engine.Select(&crs.Materials[2])
	engine.SelectAnswer(0, 1)
	engine.Select(&crs.Materials[0])

	_, ok := engine.Answer(0)
	assert.False(t, ok)
}

func TestSubmitQuizChainsIntoCompletion(t *testing.T) {
	stub := &stubAPI{course: testCourse()}
	engine := newTestEngine(t, stub)
	crs := engine.Course()
	engine.Select(&crs.Materials[2])

	engine.SelectAnswer(0, 1)
	engine.SelectAnswer(1, 0)
	require.NoError(t, engine.SubmitQuiz())

	require.Len(t, stub.updates, 2)
	assert.Equal(t, map[int]int{0: 1, 1: 0}, stub.updates[0].Answers)
	assert.Empty(t, stub.updates[1].Answers)
	assert.True(t, engine.IsCompleted("mat-c"))
	// last material: the pointer stays put
	assert.Equal(t, "mat-c", engine.Current().ID)
}

func TestSubmitQuizFailureDoesNotChain(t *testing.T) {
	stub := &stubAPI{
		course:    testCourse(),
		updateErr: errors.New("boom"),
	}
	engine := newTestEngine(t, stub)
	crs := engine.Course()
	engine.Select(&crs.Materials[2])

	err := engine.SubmitQuiz()
	require.Error(t, err)

	assert.Len(t, stub.updates, 1)
	assert.False(t, engine.IsCompleted("mat-c"))
}

func TestSubmitQuizRejectsNonQuizMaterial(t *testing.T) {
	engine := newTestEngine(t, &stubAPI{course: testCourse()})

	assert.ErrorIs(t, engine.SubmitQuiz(), ErrNotQuiz)
}
