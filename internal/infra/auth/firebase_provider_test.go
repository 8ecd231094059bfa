package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/service"
	"refuge/internal/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type fakeAdmin struct {
	created   []string
	createErr error
	verified  map[string]string
}

func (f *fakeAdmin) CreateUser(_ context.Context, _ *auth.UserToCreate) (*auth.UserRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, "uid-1")

	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "uid-1"}}, nil
}

func (f *fakeAdmin) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	uid, ok := f.verified[idToken]
	if !ok {
		return nil, errors.New("ID token has invalid signature")
	}

	return &auth.Token{UID: uid}, nil
}

type fakeSession struct {
	result *signInResult
	err    error
}

func (f *fakeSession) VerifyPassword(context.Context, string, string) (*signInResult, error) {
	return f.result, f.err
}

func idToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "uid-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("provider-key"))
	require.NoError(t, err)

	return token
}

func TestFirebaseProvider_SignUpThenSignIn(t *testing.T) {
	ctx := context.Background()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := idToken(t, exp)

	admin := &fakeAdmin{verified: map[string]string{token: "uid-1"}}
	provider := newFirebaseProvider(admin, &fakeSession{result: &signInResult{
		UID: "uid-1", Email: "a@b.fr", IDToken: token,
	}}, discardLogger())

	principal, err := provider.SignUp(ctx, "a@b.fr", "secret1")
	require.NoError(t, err)
	assert.Equal(t, []string{"uid-1"}, admin.created)
	assert.Equal(t, "uid-1", principal.UID)
	assert.Equal(t, exp.Unix(), principal.ExpiresAt.Unix())
	assert.Equal(t, principal, provider.Current())

	uid, err := provider.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)

	_, err = provider.VerifyToken(ctx, "forged")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	require.NoError(t, provider.SignOut(ctx))
	assert.Nil(t, provider.Current())
}

func TestFirebaseProvider_InvalidCredentials(t *testing.T) {
	provider := newFirebaseProvider(&fakeAdmin{}, &fakeSession{err: &googleapi.Error{
		Code:    http.StatusBadRequest,
		Message: "INVALID_LOGIN_CREDENTIALS",
	}}, discardLogger())

	_, err := provider.SignIn(context.Background(), "a@b.fr", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Equal(t, domainerrors.CodeBackingService, domainerrors.Kind(err))
	assert.Nil(t, provider.Current())
}

func TestFirebaseProvider_ServiceFailure(t *testing.T) {
	provider := newFirebaseProvider(&fakeAdmin{}, &fakeSession{err: &googleapi.Error{
		Code:    http.StatusServiceUnavailable,
		Message: "backend error",
	}}, discardLogger())

	_, err := provider.SignIn(context.Background(), "a@b.fr", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Equal(t, domainerrors.CodeBackingService, domainerrors.Kind(err))
}

func TestFirebaseProvider_SignUpFailureDoesNotSignIn(t *testing.T) {
	provider := newFirebaseProvider(&fakeAdmin{createErr: errors.New("quota exceeded")},
		&fakeSession{}, discardLogger())

	_, err := provider.SignUp(context.Background(), "a@b.fr", "secret1")
	require.Error(t, err)
	assert.Equal(t, domainerrors.CodeBackingService, domainerrors.Kind(err))
	assert.Nil(t, provider.Current())
}
