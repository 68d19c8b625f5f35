package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/pkg/utils"
)

func newGuestBookFixture(t *testing.T) (*fakeGuestBookRepo, *fakeMemorialRepo, GuestBookService) {
	t.Helper()
	repo := newFakeGuestBookRepo()
	profiles := newFakeMemorialRepo()
	return repo, profiles, NewGuestBookService(repo, profiles)
}

func seedProfile(t *testing.T, profiles *fakeMemorialRepo, slug, ownerEmail string) *db_models.DeadPersonProfile {
	t.Helper()
	p := &db_models.DeadPersonProfile{OwnerEmail: ownerEmail, Slug: slug, FirstName: "Maria", LastName: "Kowalska"}
	require.NoError(t, profiles.Insert(context.Background(), p))
	return p
}

func TestLeaveMessageStartsUnapproved(t *testing.T) {
	_, profiles, svc := newGuestBookFixture(t)
	seedProfile(t, profiles, "maria-k", "owner@example.com")

	item, err := svc.LeaveMessage(context.Background(), "maria-k", request_models.GuestBookItemRequest{
		Name: "Old friend", Message: "Rest in peace.",
	})
	require.NoError(t, err)
	assert.False(t, item.IsApproved)

	// Not visible publicly until the owner approves.
	visible, err := svc.ListApproved(context.Background(), "maria-k")
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestLeaveMessageKeepsOptionalPhoto(t *testing.T) {
	_, profiles, svc := newGuestBookFixture(t)
	seedProfile(t, profiles, "maria-k", "owner@example.com")

	photo := "https://bucket.s3.test/profiles/maria-k/guestbook/visit.jpg"
	item, err := svc.LeaveMessage(context.Background(), "maria-k", request_models.GuestBookItemRequest{
		Name: "Old friend", Message: "Rest in peace.", PhotoURL: photo,
	})
	require.NoError(t, err)
	assert.Equal(t, photo, item.PhotoURL)

	item, err = svc.LeaveMessage(context.Background(), "maria-k", request_models.GuestBookItemRequest{
		Name: "Another visitor", Message: "Missed dearly.",
	})
	require.NoError(t, err)
	assert.Empty(t, item.PhotoURL, "photo stays optional")
}

func TestLeaveMessageUnknownProfile(t *testing.T) {
	_, _, svc := newGuestBookFixture(t)
	_, err := svc.LeaveMessage(context.Background(), "nobody", request_models.GuestBookItemRequest{
		Name: "Someone", Message: "Hello",
	})
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestApproveMakesMessagePublic(t *testing.T) {
	_, profiles, svc := newGuestBookFixture(t)
	seedProfile(t, profiles, "maria-k", "owner@example.com")

	item, err := svc.LeaveMessage(context.Background(), "maria-k", request_models.GuestBookItemRequest{
		Name: "Old friend", Message: "Rest in peace.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(context.Background(), "maria-k", "owner@example.com", item.ID.String()))

	visible, err := svc.ListApproved(context.Background(), "maria-k")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Old friend", visible[0].Name)
}

func TestModerationRequiresOwner(t *testing.T) {
	_, profiles, svc := newGuestBookFixture(t)
	seedProfile(t, profiles, "maria-k", "owner@example.com")

	item, err := svc.LeaveMessage(context.Background(), "maria-k", request_models.GuestBookItemRequest{
		Name: "Visitor", Message: "Hello",
	})
	require.NoError(t, err)

	err = svc.Approve(context.Background(), "maria-k", "stranger@example.com", item.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotResourceOwner)

	err = svc.Delete(context.Background(), "maria-k", "stranger@example.com", item.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotResourceOwner)

	_, err = svc.ListAll(context.Background(), "maria-k", "stranger@example.com")
	assert.ErrorIs(t, err, utils.ErrNotResourceOwner)
}

func TestModerationRejectsItemFromAnotherProfile(t *testing.T) {
	_, profiles, svc := newGuestBookFixture(t)
	seedProfile(t, profiles, "maria-k", "owner@example.com")
	seedProfile(t, profiles, "jan-n", "owner@example.com")

	item, err := svc.LeaveMessage(context.Background(), "jan-n", request_models.GuestBookItemRequest{
		Name: "Visitor", Message: "Hello",
	})
	require.NoError(t, err)

	// Same owner, but the item belongs to the other profile.
	err = svc.Approve(context.Background(), "maria-k", "owner@example.com", item.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListAllShowsPendingToOwner(t *testing.T) {
	_, profiles, svc := newGuestBookFixture(t)
	seedProfile(t, profiles, "maria-k", "owner@example.com")

	first, err := svc.LeaveMessage(context.Background(), "maria-k", request_models.GuestBookItemRequest{
		Name: "A", Message: "one",
	})
	require.NoError(t, err)
	_, err = svc.LeaveMessage(context.Background(), "maria-k", request_models.GuestBookItemRequest{
		Name: "B", Message: "two",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Approve(context.Background(), "maria-k", "owner@example.com", first.ID.String()))

	all, err := svc.ListAll(context.Background(), "maria-k", "owner@example.com")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	visible, err := svc.ListApproved(context.Background(), "maria-k")
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestDeleteRemovesMessage(t *testing.T) {
	repo, profiles, svc := newGuestBookFixture(t)
	seedProfile(t, profiles, "maria-k", "owner@example.com")

	item, err := svc.LeaveMessage(context.Background(), "maria-k", request_models.GuestBookItemRequest{
		Name: "Visitor", Message: "Hello",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "maria-k", "owner@example.com", item.ID.String()))
	assert.Empty(t, repo.items)
}
