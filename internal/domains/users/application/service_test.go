package application

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lemono/storefront-api/internal/domains/users/adapters/memory"
	"github.com/lemono/storefront-api/internal/domains/users/domain"
	"github.com/lemono/storefront-api/internal/domains/users/ports"
)

func newTestService() *Service {
	return NewService(memory.NewRepository(), memory.NewSessionStore(), memory.NewFavoriteStore())
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := newTestService()

	user, err := svc.Register(context.Background(), "Asha Rao", "Asha@Example.com", "sunny-lemons")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "asha@example.com", user.Email)
	require.NotEqual(t, "sunny-lemons", user.PasswordHash)
	require.True(t, user.HasPassword())
}

func TestRegister_RejectsWeakPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), "Asha Rao", "asha@example.com", "12345")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrWeakPassword)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), "Asha Rao", "asha@example.com", "sunny-lemons")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other Asha", "ASHA@example.com", "other-password")
	require.ErrorIs(t, err, ports.ErrEmailTaken)
}

func TestLogin_Succeeds(t *testing.T) {
	svc := newTestService()

	registered, err := svc.Register(context.Background(), "Asha Rao", "asha@example.com", "sunny-lemons")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "asha@example.com", "sunny-lemons")
	require.NoError(t, err)
	require.Equal(t, registered.ID, result.User.ID)
	require.NotEmpty(t, result.Token)
}

func TestLogin_TokenIsRandom(t *testing.T) {
	svc := newTestService()

	registered, err := svc.Register(context.Background(), "Asha Rao", "asha@example.com", "sunny-lemons")
	require.NoError(t, err)

	first, err := svc.Login(context.Background(), "asha@example.com", "sunny-lemons")
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), "asha@example.com", "sunny-lemons")
	require.NoError(t, err)

	// 32 random bytes, hex encoded. A token must never leak the user ID.
	require.Len(t, first.Token, sessionTokenBytes*2)
	_, err = hex.DecodeString(first.Token)
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)
	require.NotContains(t, first.Token, registered.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), "Asha Rao", "asha@example.com", "sunny-lemons")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "asha@example.com", "wrong-password")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever-works")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_PasswordlessAccount(t *testing.T) {
	svc := newTestService()

	_, err := svc.GoogleLogin(context.Background(), "Asha Rao", "asha@example.com")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "asha@example.com", "sunny-lemons")
	require.ErrorIs(t, err, ErrPasswordlessAccount)
}

func TestGoogleLogin_FindsOrCreates(t *testing.T) {
	svc := newTestService()

	first, err := svc.GoogleLogin(context.Background(), "Asha Rao", "asha@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.ProviderGoogle, first.User.Provider)

	second, err := svc.GoogleLogin(context.Background(), "Asha R.", "ASHA@example.com")
	require.NoError(t, err)
	require.Equal(t, first.User.ID, second.User.ID)
}

func TestLogout_EmptyUserIDIsNoOp(t *testing.T) {
	svc := newTestService()
	require.NoError(t, svc.Logout(context.Background(), "  "))
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetProfile(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestFavorites_AddListRemove(t *testing.T) {
	svc := newTestService()

	user, err := svc.Register(context.Background(), "Asha Rao", "asha@example.com", "sunny-lemons")
	require.NoError(t, err)

	require.NoError(t, svc.AddFavorite(context.Background(), user.ID, "p-tee"))
	require.NoError(t, svc.AddFavorite(context.Background(), user.ID, "p-cap"))

	ids, err := svc.ListFavorites(context.Background(), user.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"p-tee", "p-cap"}, ids)

	require.NoError(t, svc.RemoveFavorite(context.Background(), user.ID, "p-tee"))
	ids, err = svc.ListFavorites(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"p-cap"}, ids)
}

func TestAddFavorite_DuplicateRejected(t *testing.T) {
	svc := newTestService()

	user, err := svc.Register(context.Background(), "Asha Rao", "asha@example.com", "sunny-lemons")
	require.NoError(t, err)

	require.NoError(t, svc.AddFavorite(context.Background(), user.ID, "p-tee"))
	err = svc.AddFavorite(context.Background(), user.ID, "p-tee")
	require.ErrorIs(t, err, ports.ErrAlreadyFavorite)
}

func TestAddFavorite_UnknownUser(t *testing.T) {
	svc := newTestService()

	err := svc.AddFavorite(context.Background(), "missing", "p-tee")
	require.ErrorIs(t, err, ports.ErrNotFound)
}
