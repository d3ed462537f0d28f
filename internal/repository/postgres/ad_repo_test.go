package postgres_test

import (
	"context"
	"testing"

	"github.com/dom/adboard/internal/domain"
	"github.com/dom/adboard/internal/repository/postgres"
	"github.com/dom/adboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdRepository_CRUD(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAdRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("create and fetch", func(t *testing.T) {
		ad := testutil.NewAdBuilder().
			WithTitle("bike").
			WithOwner(owner).
			Build(t, testDB.DB)

		got, err := repo.GetByID(ctx, ad.ID)
		require.NoError(t, err)
		assert.Equal(t, "bike", got.Title)
		require.NotNil(t, got.OwnerID)
		assert.Equal(t, owner.ID, *got.OwnerID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrAdNotFound)
	})

	t.Run("update persists", func(t *testing.T) {
		ad := testutil.NewAdBuilder().WithOwner(owner).Build(t, testDB.DB)

		ad.Title = "updated"
		require.NoError(t, repo.Update(ctx, ad))

		got, err := repo.GetByID(ctx, ad.ID)
		require.NoError(t, err)
		assert.Equal(t, "updated", got.Title)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		ad := testutil.NewAdBuilder().WithOwner(owner).Build(t, testDB.DB)

		require.NoError(t, repo.Delete(ctx, ad.ID))

		_, err := repo.GetByID(ctx, ad.ID)
		assert.ErrorIs(t, err, domain.ErrAdNotFound)
	})
}
