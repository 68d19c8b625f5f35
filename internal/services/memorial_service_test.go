package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/pkg/utils"
)

func newMemorialFixture(t *testing.T) (*fakeMemorialRepo, *fakeStorage, MemorialService) {
	t.Helper()
	repo := newFakeMemorialRepo()
	store := &fakeStorage{}
	return repo, store, NewMemorialService(repo, store)
}

func TestCreateProfileGeneratesSlug(t *testing.T) {
	repo, _, svc := newMemorialFixture(t)

	profile, err := svc.CreateProfile(context.Background(), "owner@example.com", request_models.CreateProfileRequest{
		FirstName: "Maria", LastName: "Kowalska",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(profile.Slug, "maria-kowalska-"))
	assert.Equal(t, "owner@example.com", profile.OwnerEmail)
	assert.False(t, profile.IsPaid)
	assert.Contains(t, repo.profiles, profile.Slug)
}

func TestUpdateProfilePatchesOnlyProvidedFields(t *testing.T) {
	repo, _, svc := newMemorialFixture(t)
	profile := &db_models.DeadPersonProfile{
		OwnerEmail: "owner@example.com", Slug: "maria-k",
		FirstName: "Maria", LastName: "Kowalska", MemorialPlace: "Rakowicki Cemetery",
	}
	require.NoError(t, repo.Insert(context.Background(), profile))

	place := "Powazki Cemetery"
	updated, err := svc.UpdateProfile(context.Background(), "maria-k", "owner@example.com", request_models.UpdateProfileRequest{
		MemorialPlace: &place,
	})
	require.NoError(t, err)
	assert.Equal(t, "Powazki Cemetery", updated.MemorialPlace)
	assert.Equal(t, "Maria", updated.FirstName, "unset fields keep their value")
}

func TestMutationsRequireOwner(t *testing.T) {
	repo, _, svc := newMemorialFixture(t)
	profile := &db_models.DeadPersonProfile{OwnerEmail: "owner@example.com", Slug: "maria-k"}
	require.NoError(t, repo.Insert(context.Background(), profile))

	_, err := svc.UpdateProfile(context.Background(), "maria-k", "stranger@example.com", request_models.UpdateProfileRequest{})
	assert.ErrorIs(t, err, utils.ErrNotResourceOwner)

	err = svc.UpsertBiography(context.Background(), "maria-k", "stranger@example.com", "...")
	assert.ErrorIs(t, err, utils.ErrNotResourceOwner)

	_, err = svc.AddFamilyMember(context.Background(), "maria-k", "stranger@example.com", request_models.FamilyRequest{
		Relation: "parent", FullName: "Jan Kowalski",
	})
	assert.ErrorIs(t, err, utils.ErrNotResourceOwner)

	_, err = svc.UpdateProfile(context.Background(), "no-such-slug", "owner@example.com", request_models.UpdateProfileRequest{})
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestAddGalleryImageValidatesUpload(t *testing.T) {
	repo, store, svc := newMemorialFixture(t)
	profile := &db_models.DeadPersonProfile{OwnerEmail: "owner@example.com", Slug: "maria-k"}
	require.NoError(t, repo.Insert(context.Background(), profile))

	_, err := svc.AddGalleryImage(context.Background(), "maria-k", "owner@example.com",
		[]byte("GIF89a"), "image/gif", "")
	assert.ErrorIs(t, err, utils.ErrFileTypeNotAllowed)

	oversized := make([]byte, profileImageMaxBytes+1)
	_, err = svc.AddGalleryImage(context.Background(), "maria-k", "owner@example.com",
		oversized, "image/png", "")
	assert.ErrorIs(t, err, utils.ErrFileTooLarge)

	assert.Empty(t, store.uploads, "rejected files never reach storage")

	entry, err := svc.AddGalleryImage(context.Background(), "maria-k", "owner@example.com",
		[]byte("png bytes"), "image/png", "Summer 1974")
	require.NoError(t, err)
	assert.Equal(t, "Summer 1974", entry.Caption)
	assert.NotEmpty(t, entry.ImageURL)
	assert.Equal(t, []string{"profiles/maria-k/gallery"}, store.uploads)
}

func TestAddFamilyMemberRejectsUnknownRelation(t *testing.T) {
	repo, _, svc := newMemorialFixture(t)
	profile := &db_models.DeadPersonProfile{OwnerEmail: "owner@example.com", Slug: "maria-k"}
	require.NoError(t, repo.Insert(context.Background(), profile))

	_, err := svc.AddFamilyMember(context.Background(), "maria-k", "owner@example.com", request_models.FamilyRequest{
		Relation: "cousin", FullName: "Someone",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidRelation)

	member, err := svc.AddFamilyMember(context.Background(), "maria-k", "owner@example.com", request_models.FamilyRequest{
		Relation: "sibling", FullName: "Anna Kowalska",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.RelationSibling, member.Relation)
}

func TestSetProfileImageReplacesOldObject(t *testing.T) {
	repo, store, svc := newMemorialFixture(t)
	profile := &db_models.DeadPersonProfile{
		OwnerEmail: "owner@example.com", Slug: "maria-k",
		ProfileImageURL: "https://bucket.s3.test/profiles/maria-k/photos/old",
	}
	require.NoError(t, repo.Insert(context.Background(), profile))

	url, err := svc.SetProfileImage(context.Background(), "maria-k", "owner@example.com",
		[]byte("jpeg bytes"), "image/jpeg", false)
	require.NoError(t, err)
	assert.Equal(t, url, profile.ProfileImageURL)
	assert.Equal(t, []string{"https://bucket.s3.test/profiles/maria-k/photos/old"}, store.deletes)

	// Background replacement leaves the portrait alone.
	bgURL, err := svc.SetProfileImage(context.Background(), "maria-k", "owner@example.com",
		[]byte("webp bytes"), "image/webp", true)
	require.NoError(t, err)
	assert.Equal(t, bgURL, profile.BackgroundImageURL)
	assert.Equal(t, url, profile.ProfileImageURL)
}

func TestGetProfileUnknownSlug(t *testing.T) {
	_, _, svc := newMemorialFixture(t)
	_, err := svc.GetProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}
