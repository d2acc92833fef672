package forms

import (
	"github.com/meharahmadft6/educonnect/api"
	"github.com/meharahmadft6/educonnect/session"
)

// LoginForm drives the login screen
type LoginForm struct {
	Form

	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`

	client *api.Client
	store  *session.Store
}

// NewLoginForm builds a login form bound to the API client and session
func NewLoginForm(client *api.Client, store *session.Store) *LoginForm {
	return &LoginForm{client: client, store: store}
}

// Submit validates the fields and attempts the login. On success the
// session store holds the new token, role and user id.
func (f *LoginForm) Submit() {
	if !f.begin(f) {
		return
	}

	resp, err := f.client.Login(f.Email, f.Password)
	if err != nil {
		f.fail(submitMessage(err, "Login failed"))
		return
	}

	if err := storeCredentials(f.store, resp); err != nil {
		f.fail("Could not save your session")
		return
	}
	f.succeed()
}

// storeCredentials persists an auth response, recovering the user id
// from the token claims when the server omits it
func storeCredentials(store *session.Store, resp *api.AuthResponse) error {
	userID := resp.UserID
	role := resp.Role
	if userID == "" || role == "" {
		if claims, err := session.ParseClaims(resp.Token); err == nil {
			if userID == "" {
				userID = claims.UserID
			}
			if role == "" {
				role = claims.Role
			}
		}
	}
	return store.SetCredentials(resp.Token, role, userID)
}

// submitMessage extracts a user-facing message from an API error,
// falling back when the payload carried none
func submitMessage(err error, fallback string) string {
	if apiErr, ok := err.(*api.Error); ok {
		return apiErr.MessageOr(fallback)
	}
	return fallback
}
