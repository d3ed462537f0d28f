package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/adboard/internal/domain"
	"github.com/dom/adboard/internal/repository/postgres"
	"github.com/dom/adboard/internal/service"
	"github.com/dom/adboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	adService := service.NewAdService(repos.Ad)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	ad, err := adService.Create(ctx, service.CreateAdInput{
		Title:       "bike",
		Description: "red bike",
		OwnerID:     owner.ID,
	})
	require.NoError(t, err)

	assert.NotZero(t, ad.ID)
	assert.NotZero(t, ad.CreatedAt)
	require.NotNil(t, ad.OwnerID)
	assert.Equal(t, owner.ID, *ad.OwnerID)
}

func TestAdService_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	adService := service.NewAdService(repos.Ad)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	newTitle := "better bike"

	t.Run("owner patches only the provided field", func(t *testing.T) {
		ad := testutil.NewAdBuilder().
			WithTitle("bike").
			WithDescription("red bike").
			WithOwner(owner).
			Build(t, testDB.DB)

		updated, err := adService.Update(ctx, ad.ID, owner.ID, service.AdPatch{Title: &newTitle})
		require.NoError(t, err)

		assert.Equal(t, newTitle, updated.Title)
		assert.Equal(t, "red bike", updated.Description)
		assert.Equal(t, ad.ID, updated.ID)
		// created_at survives the patch; the db truncates to microseconds
		assert.WithinDuration(t, ad.CreatedAt, updated.CreatedAt, time.Second)
	})

	t.Run("non-owner is rejected and the record is unchanged", func(t *testing.T) {
		ad := testutil.NewAdBuilder().
			WithTitle("bike").
			WithOwner(owner).
			Build(t, testDB.DB)

		_, err := adService.Update(ctx, ad.ID, stranger.ID, service.AdPatch{Title: &newTitle})
		assert.ErrorIs(t, err, domain.ErrNotOwner)

		stored, err := adService.Get(ctx, ad.ID)
		require.NoError(t, err)
		assert.Equal(t, "bike", stored.Title)
	})

	t.Run("ownerless ad cannot be patched", func(t *testing.T) {
		ad := testutil.NewAdBuilder().WithTitle("orphan").Build(t, testDB.DB)

		_, err := adService.Update(ctx, ad.ID, owner.ID, service.AdPatch{Title: &newTitle})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("unknown ad", func(t *testing.T) {
		_, err := adService.Update(ctx, 999999, owner.ID, service.AdPatch{Title: &newTitle})
		assert.ErrorIs(t, err, domain.ErrAdNotFound)
	})
}

func TestAdService_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	adService := service.NewAdService(repos.Ad)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("non-owner cannot delete", func(t *testing.T) {
		ad := testutil.NewAdBuilder().WithOwner(owner).Build(t, testDB.DB)

		err := adService.Delete(ctx, ad.ID, stranger.ID)
		assert.ErrorIs(t, err, domain.ErrNotOwner)

		_, err = adService.Get(ctx, ad.ID)
		assert.NoError(t, err)
	})

	t.Run("owner deletes and the ad is gone", func(t *testing.T) {
		ad := testutil.NewAdBuilder().WithOwner(owner).Build(t, testDB.DB)

		require.NoError(t, adService.Delete(ctx, ad.ID, owner.ID))

		_, err := adService.Get(ctx, ad.ID)
		assert.ErrorIs(t, err, domain.ErrAdNotFound)
	})

	t.Run("unknown ad", func(t *testing.T) {
		err := adService.Delete(ctx, 999999, owner.ID)
		assert.ErrorIs(t, err, domain.ErrAdNotFound)
	})
}
