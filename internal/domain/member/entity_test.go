//go:build unit

package member_test

import (
	"testing"

	"caja-api/internal/domain/member"
	"caja-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(member.Member{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.MemberBuilder)
	errIs  error
}

func TestMember(t *testing.T) {
	t.Run("basic construction", func(t *testing.T) {

		actual, err := builder.NewMemberBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		username, _ := member.NewUsername("testmember")
		email, _ := member.NewEmail("test@example.com")
		role, _ := member.NewRole("member")
		expected := member.NewMember(username, email, "hashed_password", role)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Member mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsApproved())
		assert.Nil(t, actual.TelegramID())
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "two characters is enough",
				mutate: func(b *builder.MemberBuilder) { b.WithUsername("ab") },
			},
			{
				name:   "surrounding whitespace is trimmed",
				mutate: func(b *builder.MemberBuilder) { b.WithUsername("  carlos  ") },
			},
			{
				name:   "single character rejected",
				mutate: func(b *builder.MemberBuilder) { b.WithUsername("a") },
				errIs:  member.ErrInvalidUsername,
			},
			{
				name:   "over 32 characters rejected",
				mutate: func(b *builder.MemberBuilder) { b.WithUsername("abcdefghijklmnopqrstuvwxyz0123456") },
				errIs:  member.ErrInvalidUsername,
			},
			{
				name:   "empty rejected",
				mutate: func(b *builder.MemberBuilder) { b.WithUsername("") },
				errIs:  member.ErrInvalidUsername,
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email ok",
				mutate: func(b *builder.MemberBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email rejected",
				mutate: func(b *builder.MemberBuilder) { b.WithEmail("") },
				errIs:  member.ErrInvalidEmail,
			},
			{
				name:   "missing at sign rejected",
				mutate: func(b *builder.MemberBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  member.ErrInvalidEmail,
			},
			{
				name:   "missing domain rejected",
				mutate: func(b *builder.MemberBuilder) { b.WithEmail("carlos@") },
				errIs:  member.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "member role ok",
				mutate: func(b *builder.MemberBuilder) { b.WithRole("member") },
			},
			{
				name:   "admin role ok",
				mutate: func(b *builder.MemberBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role rejected",
				mutate: func(b *builder.MemberBuilder) { b.WithRole("guest") },
				errIs:  member.ErrInvalidRole,
			},
			{
				name:   "empty role rejected",
				mutate: func(b *builder.MemberBuilder) { b.WithRole("") },
				errIs:  member.ErrInvalidRole,
			},
		})
	})
}

func TestPassword(t *testing.T) {
	t.Run("eight characters is enough", func(t *testing.T) {
		p, err := member.NewPassword("12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", p.Value())
	})

	t.Run("seven characters rejected", func(t *testing.T) {
		_, err := member.NewPassword("1234567")
		assert.ErrorIs(t, err, member.ErrPasswordTooWeak)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewMemberBuilder().With(c.mutate).BuildDomain()

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
