package session

import (
	"log/slog"

	"github.com/meharahmadft6/educonnect/api"
	"github.com/meharahmadft6/educonnect/models"
)

// UserContext loads the signed-in user's profile once and exposes it with
// a loading flag, mirroring how the rest of the app consumes it.
type UserContext struct {
	client *api.Client
	store  *Store

	profile *models.StudentProfile
	loadErr error
	loading bool
	loaded  bool
}

// NewUserContext builds an unloaded context. Load must be called once
// before Profile is meaningful.
func NewUserContext(client *api.Client, store *Store) *UserContext {
	return &UserContext{client: client, store: store, loading: true}
}

// Load performs the single profile fetch, keyed by the stored user id.
// No stored id short-circuits to an unauthenticated, non-loading state.
// Fetch failures are logged and leave the profile nil; Err tells callers
// apart whether the session is stale or the platform was unreachable.
func (u *UserContext) Load() {
	if u.loaded {
		return
	}
	u.loaded = true
	defer func() { u.loading = false }()

	userID := u.store.UserID()
	if userID == "" {
		return
	}

	profile, err := u.client.GetStudent(userID)
	if err != nil {
		slog.Error("failed to load user profile", "userId", userID, "err", err)
		u.loadErr = err
		return
	}
	u.profile = profile
}

// Err returns the fetch error from Load, nil on success or when no fetch
// was attempted
func (u *UserContext) Err() error { return u.loadErr }

// Profile returns the loaded profile, nil when unauthenticated or the
// fetch failed
func (u *UserContext) Profile() *models.StudentProfile { return u.profile }

// Loading reports whether the initial fetch is still pending
func (u *UserContext) Loading() bool { return u.loading }

// ApplyUpdate replaces the cached profile after a successful edit, so
// dependent views see the change without a refetch
func (u *UserContext) ApplyUpdate(updated *models.StudentProfile) {
	if updated != nil {
		u.profile = updated
	}
}
