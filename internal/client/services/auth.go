// Package services contains application services for the billtrackery client.
// This file defines the authentication service: login/logout against the
// backend, session restore at startup, and durable persistence of the session
// slot.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/alans123s/billtrackery/internal/client/client"
	"github.com/alans123s/billtrackery/internal/client/models"
	"github.com/alans123s/billtrackery/internal/client/repositories/state"
	"github.com/alans123s/billtrackery/internal/client/session"
	"github.com/alans123s/billtrackery/internal/dbx"
	"github.com/alans123s/billtrackery/internal/logging"
)

// SessionSlot is the key of the persisted session in the state database.
const SessionSlot = "session"

// persistTimeout bounds the storage write triggered by a session transition.
const persistTimeout = 5 * time.Second

// AuthService owns the authenticated-session lifecycle.
//
// Contract:
//   - Login: authenticate against the backend and replace the whole session.
//   - Logout: reset to the empty session. Idempotent.
//   - Restore: hydrate the session from durable storage at startup; any
//     absent or malformed slot yields the empty state.
//   - Session: read the current snapshot.
//   - Close: release the underlying client.
//
// Persistence runs as a post-transition hook subscribed to the store: every
// transition atomically rewrites the session slot (or removes it when the new
// state is unauthenticated).
type AuthService interface {
	Login(ctx context.Context, document string, password []byte) (models.Session, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (models.Session, error)
	Session() models.Session
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	store  *session.Store
	log    logging.Logger
}

// NewAuthService wires the service to the API client, the state database and
// the session store, and attaches the persistence hook.
func NewAuthService(c client.Client, db *sql.DB, store *session.Store, log logging.Logger) AuthService {
	a := &authService{client: c, db: db, store: store, log: log.With("component", "auth")}
	store.Subscribe(a.persist)
	return a
}

// Login sends the credentials to the backend and, on success, applies the
// session transition. The password crosses the wire once; the caller owns
// wiping the buffer.
func (a *authService) Login(ctx context.Context, document string, password []byte) (models.Session, error) {
	log := a.log.With("op", uuid.NewString())

	res, err := a.client.Login(ctx, document, string(password))
	if err != nil {
		log.Warn(ctx, "login failed", "error", err)
		return models.Session{}, err
	}

	sess := a.store.Login(res)
	log.Info(ctx, "login succeeded", "user", sess.UserName)
	return sess, nil
}

// Logout resets the session. The persistence hook removes the stored slot.
func (a *authService) Logout(ctx context.Context) error {
	a.store.Logout()
	a.log.Info(ctx, "logged out")
	return nil
}

// Restore loads the persisted session slot. A missing slot, malformed JSON,
// or a snapshot violating the credential invariant all yield the empty state;
// the two broken cases additionally clear the slot.
func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	repo := a.getStateRepo(a.db)

	raw, err := repo.Get(ctx, SessionSlot)
	if err != nil {
		return models.Session{}, err
	}
	if raw == nil {
		return models.Session{}, nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		a.log.Warn(ctx, "discarding malformed session slot", "error", err)
		_ = repo.Delete(ctx, SessionSlot)
		return models.Session{}, nil
	}
	if sess.IsAuthenticated != sess.HasCredentials() {
		a.log.Warn(ctx, "discarding inconsistent session slot")
		_ = repo.Delete(ctx, SessionSlot)
		return models.Session{}, nil
	}

	a.store.Restore(sess)
	if sess.IsAuthenticated {
		a.log.Info(ctx, "session restored", "user", sess.UserName)
	}
	return sess, nil
}

func (a *authService) Session() models.Session {
	return a.store.Read()
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func (a *authService) getStateRepo(db dbx.DBTX) state.Repository {
	return state.NewSQLiteRepository(db)
}

// persist is the post-transition hook: it atomically replaces the session
// slot with the new snapshot, or removes it when the state is unauthenticated.
// Storage failures are logged, never propagated into the transition.
func (a *authService) persist(sess models.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getStateRepo(tx)
		if err := repo.Delete(ctx, SessionSlot); err != nil {
			return err
		}
		if !sess.IsAuthenticated {
			return nil
		}
		raw, err := json.Marshal(sess)
		if err != nil {
			return err
		}
		return repo.Set(ctx, SessionSlot, raw)
	})
	if err != nil {
		a.log.Error(ctx, "failed to persist session", "error", err)
	}
}
