//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"foodshare-api/internal/domain/user"
	"foodshare-api/internal/infra/memstore"
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/errs"
	"foodshare-api/internal/usecase/commands"
	"foodshare-api/internal/pkg/password"
	"foodshare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubTokens struct {
	err    error
	issued []uuid.UUID
}

func (s *stubTokens) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.issued = append(s.issued, userID)
	return "token-" + role.String(), nil
}

func (s *stubTokens) TokenDuration() time.Duration { return time.Hour }

func TestAuthCommands_Login(t *testing.T) {
	const pw = "correct-horse"
	hash, err := password.HashPasswordWithCost(pw, bcrypt.MinCost)
	require.NoError(t, err)

	setup := func(t *testing.T, users ...*user.User) (*memstore.Store, *stubTokens, commands.AuthCommands) {
		t.Helper()
		store := memstore.New()
		for _, u := range users {
			require.NoError(t, store.AddUser(u))
		}
		tokens := &stubTokens{}
		cmds := commands.NewAuthCommands(memstore.NewUoW(store), memstore.NewUserReadStore(store), tokens, clock.NewMockClock(builder.FixedNow))
		return store, tokens, cmds
	}

	t.Run("valid credentials issue a token and stamp last login", func(t *testing.T) {
		org := builder.NewUserBuilder().
			WithEmail("shelter@example.com").
			WithRole("organization").
			WithPasswordHash(hash).
			MustBuildDomain()
		store, tokens, cmds := setup(t, org)

		res, err := cmds.Login(context.Background(), "Shelter@Example.com ", pw)

		require.NoError(t, err)
		assert.Equal(t, org.ID(), res.UserID)
		assert.Equal(t, user.RoleOrganization, res.Role)
		assert.Equal(t, "token-organization", res.AccessToken)
		assert.Equal(t, time.Hour, res.ExpiresIn)
		assert.Equal(t, []uuid.UUID{org.ID()}, tokens.issued)

		profile, err := memstore.NewUserReadStore(store).FindProfile(context.Background(), org.ID())
		require.NoError(t, err)
		require.NotNil(t, profile.LastLogin)
		assert.Equal(t, builder.FixedNow, *profile.LastLogin)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		donor := builder.NewUserBuilder().WithPasswordHash(hash).MustBuildDomain()
		_, tokens, cmds := setup(t, donor)

		_, wrongPw := cmds.Login(context.Background(), donor.Email().Value(), "not-the-password")
		_, unknown := cmds.Login(context.Background(), "nobody@example.com", pw)

		assert.ErrorIs(t, wrongPw, commands.ErrInvalidCredentials)
		assert.ErrorIs(t, unknown, commands.ErrInvalidCredentials)
		assert.Empty(t, tokens.issued)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, _, cmds := setup(t)

		_, err := cmds.Login(context.Background(), "not-an-email", pw)

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("inactive account", func(t *testing.T) {
		donor := builder.NewUserBuilder().WithPasswordHash(hash).AsInactive().MustBuildDomain()
		_, tokens, cmds := setup(t, donor)

		_, err := cmds.Login(context.Background(), donor.Email().Value(), pw)

		assert.ErrorIs(t, err, commands.ErrUserInactive)
		assert.Empty(t, tokens.issued)
	})

	t.Run("token failure", func(t *testing.T) {
		donor := builder.NewUserBuilder().WithPasswordHash(hash).MustBuildDomain()
		_, tokens, cmds := setup(t, donor)
		tokens.err = assert.AnError

		_, err := cmds.Login(context.Background(), donor.Email().Value(), pw)

		assert.True(t, errs.Is(err, commands.ErrTokenGeneration))
	})
}
