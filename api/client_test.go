package api_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meharahmadft6/educonnect/api"
	"github.com/meharahmadft6/educonnect/mockapi"
	"github.com/meharahmadft6/educonnect/models"
	"github.com/meharahmadft6/educonnect/session"
)

// startClient boots a mock platform on an ephemeral port and returns a
// client bound to an empty session
func startClient(t *testing.T) (*api.Client, *session.Store) {
	t.Helper()

	server, err := mockapi.New(mockapi.Options{Quiet: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Shutdown() })

	baseURL, err := server.Start()
	require.NoError(t, err)

	store, err := session.Load(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	return api.NewClient(baseURL, 5*time.Second, store), store
}

// registerStudent creates an account and signs the session in
func registerStudent(t *testing.T, client *api.Client, store *session.Store, email string) string {
	t.Helper()

	resp, err := client.Register(api.RegisterRequest{
		Role:     models.RoleStudent,
		Username: "jane",
		Email:    email,
		Password: "secret123",
		StudentData: &models.StudentData{
			FirstName:  "Jane",
			LastName:   "Doe",
			GradeLevel: 7,
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NoError(t, store.SetCredentials(resp.Token, resp.Role, resp.UserID))
	return resp.UserID
}

func TestDecodesResponseWithoutContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// no Content-Type header on purpose
		_, _ = w.Write([]byte(`[{"_id":"c1","title":"Go Basics"}]`))
	}))
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, 5*time.Second, nil)

	courses, err := client.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Go Basics", courses[0].Title)
}

func TestRegisterLoginProfile(t *testing.T) {
	client, store := startClient(t)
	userID := registerStudent(t, client, store, "jane@example.com")

	profile, err := client.Profile()
	require.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, "Jane Doe", profile.FullName())
	require.NotNil(t, profile.User)
	assert.Equal(t, "jane@example.com", profile.User.Email)
	assert.Equal(t, models.RoleStudent, profile.User.Role)

	// a fresh login against the same account works too
	resp, err := client.Login("jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, models.RoleStudent, resp.Role)

	fetched, err := client.GetStudent(userID)
	require.NoError(t, err)
	assert.Equal(t, 7, fetched.GradeLevel)
}

func TestDuplicateEmailIsValidationError(t *testing.T) {
	client, store := startClient(t)
	registerStudent(t, client, store, "jane@example.com")

	_, err := client.Register(api.RegisterRequest{
		Role:        models.RoleStudent,
		Username:    "jane2",
		Email:       "jane@example.com",
		Password:    "secret123",
		StudentData: &models.StudentData{FirstName: "J", LastName: "D", GradeLevel: 3},
	})
	require.Error(t, err)

	apiErr, ok := err.(*api.Error)
	require.True(t, ok)
	assert.Equal(t, api.KindValidation, apiErr.Kind)
	assert.Equal(t, "Email is already registered", apiErr.Message)
}

func TestWrongPasswordIsAuthError(t *testing.T) {
	client, store := startClient(t)
	registerStudent(t, client, store, "jane@example.com")

	_, err := client.Login("jane@example.com", "nope")
	require.Error(t, err)

	apiErr, ok := err.(*api.Error)
	require.True(t, ok)
	assert.Equal(t, api.KindAuth, apiErr.Kind)
	assert.Equal(t, "Invalid email or password", apiErr.MessageOr("fallback"))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	client, _ := startClient(t)

	_, err := client.ListCourses()
	require.Error(t, err)
	assert.True(t, api.IsAuth(err))
}

func TestCourseCatalogAndDetail(t *testing.T) {
	client, store := startClient(t)
	registerStudent(t, client, store, "jane@example.com")

	courses, err := client.ListCourses()
	require.NoError(t, err)
	require.NotEmpty(t, courses)

	detail, err := client.GetCourse(courses[0].ID)
	require.NoError(t, err)
	assert.Equal(t, courses[0].Title, detail.Title)
	require.NotEmpty(t, detail.Materials)
	assert.NotEmpty(t, detail.Teachers)

	_, err = client.GetCourse("missing-course")
	require.Error(t, err)
	apiErr := err.(*api.Error)
	assert.Equal(t, api.KindUnknown, apiErr.Kind)
	assert.Equal(t, 404, apiErr.Status)
}

func TestEnrollOnlyOnce(t *testing.T) {
	client, store := startClient(t)
	userID := registerStudent(t, client, store, "jane@example.com")

	courses, err := client.ListCourses()
	require.NoError(t, err)
	courseID := courses[0].ID

	require.NoError(t, client.Enroll(courseID, userID))

	err = client.Enroll(courseID, userID)
	require.Error(t, err)
	apiErr := err.(*api.Error)
	assert.Equal(t, api.KindValidation, apiErr.Kind)
	assert.Equal(t, "Already enrolled", apiErr.Message)
}

func TestProgressUpdateAcknowledged(t *testing.T) {
	client, store := startClient(t)
	userID := registerStudent(t, client, store, "jane@example.com")

	courses, err := client.ListCourses()
	require.NoError(t, err)
	detail, err := client.GetCourse(courses[0].ID)
	require.NoError(t, err)
	require.NoError(t, client.Enroll(detail.ID, userID))

	ack, err := client.UpdateProgress(detail.ID, api.ProgressUpdate{
		UserID:     userID,
		MaterialID: detail.Materials[0].ID,
		Score:      100,
		Progress:   25,
	})
	require.NoError(t, err)
	assert.Equal(t, detail.Materials[0].ID, ack.MaterialID)
	assert.Equal(t, 25, ack.Progress)

	// quiz-style update without a progress value derives one server side
	ack, err = client.UpdateProgress(detail.ID, api.ProgressUpdate{
		UserID:     userID,
		MaterialID: detail.Materials[1].ID,
		Score:      100,
		Answers:    map[int]int{0: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2*100/len(detail.Materials), ack.Progress)

	_, err = client.UpdateProgress(detail.ID, api.ProgressUpdate{
		UserID:     userID,
		MaterialID: "not-in-course",
		Score:      100,
	})
	require.Error(t, err)
}
