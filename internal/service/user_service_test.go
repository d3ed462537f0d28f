package service_test

import (
	"context"
	"testing"

	"github.com/dom/adboard/internal/domain"
	"github.com/dom/adboard/internal/repository/postgres"
	"github.com/dom/adboard/internal/service"
	"github.com/dom/adboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	hasher := service.NewBcryptHasher(4)
	userService := service.NewUserService(repos.User, hasher)
	ctx := context.Background()

	t.Run("password is stored hashed", func(t *testing.T) {
		user, err := userService.Create(ctx, service.CreateUserInput{
			Login:    "fresh@ads.com",
			Password: "longenough",
		})
		require.NoError(t, err)

		assert.NotZero(t, user.ID)
		assert.NotEqual(t, "longenough", user.PasswordHash)
		assert.True(t, hasher.Verify("longenough", user.PasswordHash))
	})

	t.Run("duplicate login conflicts and leaves one record", func(t *testing.T) {
		_, err := userService.Create(ctx, service.CreateUserInput{
			Login:    "dup@ads.com",
			Password: "longenough",
		})
		require.NoError(t, err)

		_, err = userService.Create(ctx, service.CreateUserInput{
			Login:    "dup@ads.com",
			Password: "otherpassword",
		})
		assert.ErrorIs(t, err, domain.ErrLoginTaken)

		var count int64
		testDB.DB.Model(&domain.User{}).Where("login = ?", "dup@ads.com").Count(&count)
		assert.EqualValues(t, 1, count)
	})
}

func TestUserService_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	hasher := service.NewBcryptHasher(4)
	userService := service.NewUserService(repos.User, hasher)
	ctx := context.Background()

	t.Run("patch login only", func(t *testing.T) {
		user, _ := testutil.NewUserBuilder().WithLogin("old@ads.com").Build(t, testDB.DB)

		newLogin := "new@ads.com"
		updated, err := userService.Update(ctx, user.ID, service.UserPatch{Login: &newLogin})
		require.NoError(t, err)

		assert.Equal(t, newLogin, updated.Login)
		assert.Equal(t, user.PasswordHash, updated.PasswordHash)
	})

	t.Run("patch password rehashes", func(t *testing.T) {
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		newPassword := "brandnewpass"
		updated, err := userService.Update(ctx, user.ID, service.UserPatch{Password: &newPassword})
		require.NoError(t, err)

		assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)
		assert.True(t, hasher.Verify(newPassword, updated.PasswordHash))
	})

	t.Run("patch to an existing login conflicts", func(t *testing.T) {
		taken, _ := testutil.NewUserBuilder().WithLogin("taken@ads.com").Build(t, testDB.DB)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		_, err := userService.Update(ctx, user.ID, service.UserPatch{Login: &taken.Login})
		assert.ErrorIs(t, err, domain.ErrLoginTaken)
	})

	t.Run("unknown user", func(t *testing.T) {
		login := "ghost@ads.com"
		_, err := userService.Update(ctx, 999999, service.UserPatch{Login: &login})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
