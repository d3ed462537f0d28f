package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/adboard/internal/domain"
	"github.com/dom/adboard/internal/repository/postgres"
	"github.com/dom/adboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr error
	}{
		{
			name: "successful creation",
			user: &domain.User{
				Login:        "first@ads.com",
				PasswordHash: "hashedpassword",
				CreatedAt:    time.Now(),
			},
		},
		{
			name: "duplicate login",
			user: &domain.User{
				Login:        "first@ads.com", // Same as above
				PasswordHash: "hashedpassword2",
				CreatedAt:    time.Now(),
			},
			wantErr: domain.ErrLoginTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
			}
		})
	}
}

func TestUserRepository_GetByLogin(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithLogin("lookup@ads.com").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		login   string
		wantErr error
	}{
		{
			name:  "existing login",
			login: "lookup@ads.com",
		},
		{
			name:    "unknown login",
			login:   "missing@ads.com",
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:    "lookup is exact match",
			login:   "LOOKUP@ads.com",
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByLogin(ctx, tt.login)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
		})
	}
}

func TestUserRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	taken, _ := testutil.NewUserBuilder().WithLogin("taken@ads.com").Build(t, testDB.DB)
	user, _ := testutil.NewUserBuilder().WithLogin("mine@ads.com").Build(t, testDB.DB)

	t.Run("rename to a free login", func(t *testing.T) {
		user.Login = "renamed@ads.com"
		require.NoError(t, repo.Update(ctx, user))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed@ads.com", got.Login)
	})

	t.Run("rename onto a taken login conflicts", func(t *testing.T) {
		user.Login = taken.Login
		err := repo.Update(ctx, user)
		assert.ErrorIs(t, err, domain.ErrLoginTaken)
	})
}
