package contact_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novahq/nova-backend/internal/adapter/postgres/contact"
	"github.com/novahq/nova-backend/internal/adapter/postgres/testhelper"
	"github.com/novahq/nova-backend/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestRepo_Create_AndGet(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := contact.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	requester := testhelper.SeedUser(t, pool)
	item := testhelper.SeedItem(t, pool, owner.ID, domain.ItemRoleFound)

	created, err := repo.Create(ctx, &domain.ContactRequest{
		ID:          uuid.New(),
		RequesterID: requester.ID,
		ItemID:      item.ID,
		Message:     strPtr("I think that's my wallet"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ContactRequestStatusPending, created.Status)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, requester.ID, got.RequesterID)
	assert.Equal(t, item.ID, got.ItemID)
	require.NotNil(t, got.Message)
	assert.Equal(t, "I think that's my wallet", *got.Message)
}

func TestRepo_ListForUser_BothDirections(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := contact.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	requester := testhelper.SeedUser(t, pool)
	outsider := testhelper.SeedUser(t, pool)
	ownerItem := testhelper.SeedItem(t, pool, owner.ID, domain.ItemRoleFound)
	outsiderItem := testhelper.SeedItem(t, pool, outsider.ID, domain.ItemRoleFound)

	// Request targeting the owner's item.
	incoming, err := repo.Create(ctx, &domain.ContactRequest{
		ID:          uuid.New(),
		RequesterID: requester.ID,
		ItemID:      ownerItem.ID,
	})
	require.NoError(t, err)

	// Request the owner sent to someone else's item.
	outgoing, err := repo.Create(ctx, &domain.ContactRequest{
		ID:          uuid.New(),
		RequesterID: owner.ID,
		ItemID:      outsiderItem.ID,
	})
	require.NoError(t, err)

	got, err := repo.ListForUser(ctx, owner.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	ids := map[uuid.UUID]struct{}{got[0].ID: {}, got[1].ID: {}}
	assert.Contains(t, ids, incoming.ID)
	assert.Contains(t, ids, outgoing.ID)

	// The requester only sees the request they sent.
	got, err = repo.ListForUser(ctx, requester.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, incoming.ID, got[0].ID)
}

func TestRepo_UpdateStatus(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := contact.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	requester := testhelper.SeedUser(t, pool)
	item := testhelper.SeedItem(t, pool, owner.ID, domain.ItemRoleLost)

	created, err := repo.Create(ctx, &domain.ContactRequest{
		ID:          uuid.New(),
		RequesterID: requester.ID,
		ItemID:      item.ID,
	})
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, domain.ContactRequestStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactRequestStatusApproved, updated.Status)
	assert.True(t, !updated.UpdatedAt.Before(created.UpdatedAt))
}
