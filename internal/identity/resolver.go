// Package identity produces the session user for login and signup.
//
// By default the resolver runs in demonstration mode: any password is accepted and
// unknown emails get a freshly synthesized user. Options.VerifyCredentials switches to
// bcrypt verification against the account directory.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"manuscrito/internal/db"
	applog "manuscrito/internal/log"
	"manuscrito/internal/progress"
	"manuscrito/models"
)

// loginStartPercentage is what a synthesized login user starts with, one day's worth.
var loginStartPercentage = progress.Percentage(1)

// Directory finds seeded accounts by exact email.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (models.Account, error)
}

// SessionStore receives the resolved user.
type SessionStore interface {
	Set(ctx context.Context, u models.User) error
	Clear(ctx context.Context) error
}

// Options tune the resolver.
type Options struct {
	VerifyCredentials bool
	Now               func() time.Time
	NewID             func() string
}

// Resolver implements login, signup and logout over a directory and a session store.
type Resolver struct {
	directory Directory
	store     SessionStore
	opts      Options
}

// NewResolver builds a Resolver. A nil directory behaves as an empty one.
func NewResolver(directory Directory, store SessionStore, opts Options) *Resolver {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Resolver{directory: directory, store: store, opts: opts}
}

// Login resolves email to a seeded account or a new user and makes it current.
func (r *Resolver) Login(ctx context.Context, email, password string) (models.User, error) {
	account, found, err := r.lookup(ctx, email)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	switch {
	case found && r.opts.VerifyCredentials:
		if account.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
			applog.Debug(ctx, "credential check failed", "email", email)
			return models.User{}, ErrInvalidCredentials
		}
		user = account.User()
	case found:
		user = account.User()
	case r.opts.VerifyCredentials:
		applog.Debug(ctx, "login for unknown email rejected", "email", email)
		return models.User{}, ErrInvalidCredentials
	default:
		user = models.User{
			ID:                 r.opts.NewID(),
			Name:               localPart(email),
			Email:              email,
			IsAdmin:            false,
			ProgressPercentage: loginStartPercentage,
			LastUnlockedDay:    progress.FirstDay,
			CreatedAt:          r.opts.Now().UTC(),
		}
	}

	if err := r.commit(ctx, user); err != nil {
		return models.User{}, err
	}
	applog.Debug(ctx, "login resolved", "userID", user.ID, "seeded", found, "admin", user.IsAdmin)
	return user, nil
}

// Signup always creates a new user. Duplicate emails are only rejected when
// credentials are verified.
func (r *Resolver) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	if r.opts.VerifyCredentials {
		_, found, err := r.lookup(ctx, email)
		if err != nil {
			return models.User{}, err
		}
		if found {
			return models.User{}, ErrEmailAlreadyRegistered
		}
	}

	user := models.User{
		ID:                 r.opts.NewID(),
		Name:               name,
		Email:              email,
		IsAdmin:            false,
		ProgressPercentage: 0,
		LastUnlockedDay:    progress.FirstDay,
		CreatedAt:          r.opts.Now().UTC(),
	}
	if err := r.commit(ctx, user); err != nil {
		return models.User{}, err
	}
	applog.Debug(ctx, "signup resolved", "userID", user.ID)
	return user, nil
}

// Logout clears the current user.
func (r *Resolver) Logout(ctx context.Context) error {
	if err := r.store.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionUnavailable, err)
	}
	return nil
}

func (r *Resolver) lookup(ctx context.Context, email string) (models.Account, bool, error) {
	if r.directory == nil {
		return models.Account{}, false, nil
	}
	account, err := r.directory.FindByEmail(ctx, email)
	if errors.Is(err, db.ErrAccountNotFound) {
		return models.Account{}, false, nil
	}
	if err != nil {
		return models.Account{}, false, fmt.Errorf("look up account: %w", err)
	}
	return account, true, nil
}

func (r *Resolver) commit(ctx context.Context, u models.User) error {
	if err := r.store.Set(ctx, u); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionUnavailable, err)
	}
	return nil
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
