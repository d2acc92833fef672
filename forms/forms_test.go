package forms

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meharahmadft6/educonnect/api"
	"github.com/meharahmadft6/educonnect/models"
	"github.com/meharahmadft6/educonnect/session"
)

// testBackend is a canned HTTP server that counts how many requests the
// forms actually issue
type testBackend struct {
	server   *httptest.Server
	requests int
	status   int
	body     string
}

func newTestBackend(t *testing.T, status int, body string) *testBackend {
	t.Helper()
	b := &testBackend{status: status, body: body}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.requests++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(b.status)
		_, _ = w.Write([]byte(b.body))
	}))
	t.Cleanup(b.server.Close)
	return b
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.Load(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return store
}

func (b *testBackend) client(store *session.Store) *api.Client {
	return api.NewClient(b.server.URL, 5*time.Second, store)
}

func TestLoginValidationBlocksSubmission(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `{}`)
	store := newTestStore(t)

	f := NewLoginForm(backend.client(store), store)
	f.Email = "not-an-email"
	f.Submit()

	assert.Equal(t, 0, backend.requests)
	assert.Equal(t, StateEditing, f.State())
	assert.Equal(t, "Invalid email address", f.FieldErrors()["email"])
	assert.Equal(t, "Required", f.FieldErrors()["password"])
}

func TestLoginSuccessStoresCredentials(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK,
		`{"token":"tok-123","role":"student","userId":"stu-1"}`)
	store := newTestStore(t)

	f := NewLoginForm(backend.client(store), store)
	f.Email = "jane@example.com"
	f.Password = "hunter2"
	f.Submit()

	require.Equal(t, StateSuccess, f.State())
	assert.Equal(t, "tok-123", store.Token())
	assert.Equal(t, "student", store.Role())
	assert.Equal(t, "stu-1", store.UserID())
}

func TestLoginFailureSurfacesServerMessage(t *testing.T) {
	backend := newTestBackend(t, http.StatusUnauthorized,
		`{"error":"Invalid email or password"}`)
	store := newTestStore(t)

	f := NewLoginForm(backend.client(store), store)
	f.Email = "jane@example.com"
	f.Password = "wrong"
	f.Submit()

	assert.Equal(t, StateFailure, f.State())
	assert.Equal(t, "Invalid email or password", f.SubmitError())
	assert.Empty(t, store.Token())
}

func TestLoginFailureFallsBackToGenericMessage(t *testing.T) {
	backend := newTestBackend(t, http.StatusInternalServerError, ``)
	store := newTestStore(t)

	f := NewLoginForm(backend.client(store), store)
	f.Email = "jane@example.com"
	f.Password = "hunter2"
	f.Submit()

	assert.Equal(t, StateFailure, f.State())
	assert.Equal(t, "Login failed", f.SubmitError())
}

func TestShortPasswordRejectedBeforeAnyNetworkCall(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `{}`)
	store := newTestStore(t)

	f := NewStudentRegisterForm(backend.client(store), store)
	f.Username = "jane"
	f.Email = "jane@example.com"
	f.Password = "short"
	f.FirstName = "Jane"
	f.LastName = "Doe"
	f.GradeLevel = 5

	f.Submit()

	assert.Equal(t, 0, backend.requests)
	assert.Equal(t, "Must be at least 6 characters", f.FieldErrors()["password"])
}

func TestStudentRegistrationValidatesGradeRange(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `{}`)
	store := newTestStore(t)

	f := NewStudentRegisterForm(backend.client(store), store)
	f.Username = "jane"
	f.Email = "jane@example.com"
	f.Password = "secret123"
	f.FirstName = "Jane"
	f.LastName = "Doe"
	f.GradeLevel = 13

	f.Submit()

	assert.Equal(t, 0, backend.requests)
	assert.Equal(t, "Must be at most 12", f.FieldErrors()["gradeLevel"])
}

func TestStudentRegistrationSignsIn(t *testing.T) {
	backend := newTestBackend(t, http.StatusCreated,
		`{"token":"tok-reg","role":"student","userId":"stu-9"}`)
	store := newTestStore(t)

	f := NewStudentRegisterForm(backend.client(store), store)
	f.Username = "jane"
	f.Email = "jane@example.com"
	f.Password = "secret123"
	f.FirstName = "Jane"
	f.LastName = "Doe"
	f.GradeLevel = 5

	f.Submit()

	require.Equal(t, StateSuccess, f.State())
	assert.Equal(t, 1, backend.requests)
	assert.Equal(t, "tok-reg", store.Token())
	assert.Equal(t, "stu-9", store.UserID())
}

func TestTeacherRegistrationRejectsNegativeExperience(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `{}`)
	store := newTestStore(t)

	f := NewTeacherRegisterForm(backend.client(store), store)
	f.Username = "mark"
	f.Email = "mark@example.com"
	f.Password = "secret123"
	f.FirstName = "Mark"
	f.LastName = "Lee"
	f.SubjectSpecialty = "Physics"
	f.YearsOfExperience = -2

	f.Submit()

	assert.Equal(t, 0, backend.requests)
	assert.Equal(t, "Cannot be negative", f.FieldErrors()["yearsOfExperience"])
}

func TestProfileEditRequiresNames(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `{}`)
	store := newTestStore(t)

	f := NewProfileEditForm(backend.client(store), &models.StudentProfile{
		ID:         "stu-1",
		FirstName:  "Jane",
		LastName:   "Doe",
		GradeLevel: 5,
	})
	f.FirstName = ""
	f.Submit()

	assert.Equal(t, 0, backend.requests)
	assert.Equal(t, "Required", f.FieldErrors()["firstName"])
}

func TestProfileEditSubmitsUpdate(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK,
		`{"_id":"stu-1","firstName":"Janet","lastName":"Doe","gradeLevel":6}`)
	store := newTestStore(t)

	f := NewProfileEditForm(backend.client(store), &models.StudentProfile{
		ID:         "stu-1",
		FirstName:  "Jane",
		LastName:   "Doe",
		GradeLevel: 5,
	})
	f.FirstName = "Janet"
	f.GradeLevel = 6
	f.Submit()

	require.Equal(t, StateSuccess, f.State())
	require.NotNil(t, f.Updated())
	assert.Equal(t, "Janet", f.Updated().FirstName)
	assert.Equal(t, 6, f.Updated().GradeLevel)
}
