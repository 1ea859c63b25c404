package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	dom "Platform/internal/domain"
	"Platform/internal/token"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepo with the same observable behavior
// as the Postgres one: pgx.ErrNoRows on miss, unique violation on
// duplicate username. Create is atomic, like the database's
// check-and-insert under the unique constraint.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]dom.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]dom.User{}, nextID: 1}
}

func (f *fakeUserRepo) add(username, password, email string) dom.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u := dom.User{
		ID:           f.nextID,
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	f.nextID++
	f.users[username] = u
	return u
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dom.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, username, passwordHash, email string) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[username]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505"}
	}
	u := dom.User{
		ID:           f.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	f.nextID++
	f.users[username] = u
	return u, nil
}

func newAuthService(r *fakeUserRepo) *AuthService {
	return NewAuthService(r, token.NewCodec([]byte("test-secret")), time.Hour)
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newFakeUserRepo()
	john := repo.add("john", "password123", "john@example.com")
	svc := newAuthService(repo)

	issued, err := svc.Authenticate(context.Background(), "john", "password123")
	require.NoError(t, err)
	require.Equal(t, john.ID, issued.UserID)
	require.Equal(t, "john", issued.Username)
	require.Equal(t, "john@example.com", issued.Email)
	require.Equal(t, int64(3600), issued.ExpiresIn)
	require.NotEmpty(t, issued.Token)

	// The issued token decodes back to the same subject.
	sub, err := token.NewCodec([]byte("test-secret")).Verify(issued.Token)
	require.NoError(t, err)
	require.Equal(t, john.ID, sub.UserID)
	require.Equal(t, "john", sub.Username)
}

func TestAuthenticate_Failures(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add("john", "password123", "john@example.com")
	svc := newAuthService(repo)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"empty username", "", "x", ErrMissingField},
		{"blank username", "   ", "x", ErrMissingField},
		{"empty password", "john", "", ErrMissingField},
		{"unknown user", "nobody", "password123", ErrInvalidCredentials},
		{"wrong password", "john", "hunter2", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tt.username, tt.password)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	issued, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "alice", issued.Username)
	require.Equal(t, "alice@example.com", issued.Email)
	require.NotEmpty(t, issued.Token)

	// Stored credential is a bcrypt hash, never the plaintext.
	stored := repo.users["alice"]
	require.NotEqual(t, "s3cret", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
	require.True(t, stored.Active)

	// And the new account can log in.
	_, err = svc.Authenticate(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other")
	require.ErrorIs(t, err, ErrUsernameTaken)
	require.Len(t, repo.users, 1)
}

func TestRegister_ConcurrentSameUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	const n = 8
	start := make(chan struct{})
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Register(context.Background(), "alice", "s3cret")
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	// Exactly one registration wins; the rest lose to the unique
	// constraint. No duplicate account is ever observable.
	var succeeded, taken int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrUsernameTaken):
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, n-1, taken)
	require.Len(t, repo.users, 1)
}

func TestRegister_MissingField(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "", "pw")
	require.ErrorIs(t, err, ErrMissingField)
	_, err = svc.Register(context.Background(), "bob", "  ")
	require.ErrorIs(t, err, ErrMissingField)
}

func TestGetUserByID(t *testing.T) {
	repo := newFakeUserRepo()
	john := repo.add("john", "password123", "john@example.com")
	svc := newAuthService(repo)

	u, err := svc.GetUserByID(context.Background(), john.ID)
	require.NoError(t, err)
	require.Equal(t, "john", u.Username)

	_, err = svc.GetUserByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrUserNotFound)
}
