// Package auth provides the sign-in collaborator used by the login screen.
//
// Sign-in is asynchronous: SignIn returns immediately with a channel that
// later delivers exactly one Result and is then closed. The caller only
// reacts to the resolved value.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrGuestDisabled is returned for an empty username when guests are not allowed.
	ErrGuestDisabled = errors.New("guest sign-in is disabled")
)

// Request carries what the user typed on the login screen.
type Request struct {
	Username string
	Password string
}

// Result is the outcome of a sign-in. Err is nil on success.
type Result struct {
	DisplayName string
	SessionID   string
	Err         error
}

// OK reports whether the sign-in succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Authenticator signs a user in.
type Authenticator interface {
	SignIn(ctx context.Context, req Request) <-chan Result
}

// Account is a user known to the Local authenticator.
type Account struct {
	Username     string
	DisplayName  string
	PasswordHash string // bcrypt
}

// Local checks credentials against a fixed set of accounts.
type Local struct {
	accounts   map[string]Account
	allowGuest bool
}

// NewLocal creates a Local authenticator. With allowGuest, an empty
// username signs in without a display name.
func NewLocal(accounts []Account, allowGuest bool) *Local {
	byName := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byName[a.Username] = a
	}
	return &Local{accounts: byName, allowGuest: allowGuest}
}

// SignIn verifies req on a separate goroutine.
func (l *Local) SignIn(ctx context.Context, req Request) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		res := l.verify(req)
		if err := ctx.Err(); err != nil {
			res = Result{Err: fmt.Errorf("sign-in aborted: %w", err)}
		}
		out <- res
	}()
	return out
}

func (l *Local) verify(req Request) Result {
	if req.Username == "" {
		if !l.allowGuest {
			return Result{Err: ErrGuestDisabled}
		}
		return Result{SessionID: newSessionID()}
	}

	account, ok := l.accounts[req.Username]
	if !ok {
		// Unknown users cost one bcrypt comparison, like known ones.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		return Result{Err: ErrInvalidCredentials}
	}
	if !CheckPasswordHash(req.Password, account.PasswordHash) {
		return Result{Err: ErrInvalidCredentials}
	}
	name := account.DisplayName
	if name == "" {
		name = account.Username
	}
	return Result{DisplayName: name, SessionID: newSessionID()}
}

var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZsYyOlIYdsXBaGJkUm8fmW")

func newSessionID() string {
	return uuid.NewString()
}

// HashPassword hashes the password for an Account entry.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether password matches the bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Func adapts a function to the Authenticator interface.
type Func func(ctx context.Context, req Request) Result

// SignIn runs f on a separate goroutine.
func (f Func) SignIn(ctx context.Context, req Request) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- f(ctx, req)
	}()
	return out
}
