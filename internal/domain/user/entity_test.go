//go:build unit

package user_test

import (
	"testing"

	"foodshare-api/internal/domain/geo"
	"foodshare-api/internal/domain/user"
	"foodshare-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("donor@example.com")
		expected, err := user.NewUser(email, "hashed_password", user.RoleDonor, user.Profile{Name: "Test Donor"}, builder.FixedNow)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, "donor@example.com", actual.Email().Value())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "donor ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("donor") },
			},
			{
				name:   "organization ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("organization") },
			},
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "旧ロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("プロフィール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "位置情報ありOK",
				mutate: func(b *builder.UserBuilder) { b.WithLocation(12.97, 77.59) },
			},
			{
				name:   "位置情報なしOK",
				mutate: func(b *builder.UserBuilder) { b.WithoutLocation() },
			},
			{
				name:   "範囲外の緯度NG",
				mutate: func(b *builder.UserBuilder) { b.WithLocation(100, 0) },
				errIs:  geo.ErrInvalidInput,
			},
			{
				name:   "名前なしNG",
				mutate: func(b *builder.UserBuilder) { b.Name = "  " },
				errIs:  user.ErrNameRequired,
			},
		})
	})
}

func TestRoleAllows(t *testing.T) {
	assert.True(t, user.RoleDonor.Allows(user.RoleDonor))
	assert.False(t, user.RoleDonor.Allows(user.RoleOrganization))
	assert.True(t, user.RoleOrganization.Allows(user.RoleOrganization))
	assert.True(t, user.RoleAdmin.Allows(user.RoleDonor))
	assert.True(t, user.RoleAdmin.Allows(user.RoleOrganization))
	assert.True(t, user.RoleOrganization.Allows(user.RoleDonor, user.RoleOrganization))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
