package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCreateAndGetRoundTrip(t *testing.T) {
	gdb := setupTestDB(t)
	notifier, _ := recordingNotifier()
	repo := NewServiceRepository(gdb, notifier)

	input := ServiceInput{
		Title:       "Roofing",
		Slug:        "roofing",
		Description: "Durable roofing solutions",
		Content:     "Full roofing service details.",
		Category:    "exterior",
		Icon:        "home",
		IsFeatured:  true,
	}

	created, err := repo.Create(input)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Title, fetched.Title)
	assert.Equal(t, input.Slug, fetched.Slug)
	assert.Equal(t, input.Description, fetched.Description)
	assert.Equal(t, input.Icon, fetched.Icon)
	assert.True(t, fetched.IsFeatured)

	bySlug, err := repo.GetBySlug("roofing")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

func TestServiceListFeaturedFilterAndOrder(t *testing.T) {
	gdb := setupTestDB(t)
	notifier, _ := recordingNotifier()
	repo := NewServiceRepository(gdb, notifier)

	_, err := repo.Create(ServiceInput{Title: "Roofing", Slug: "roofing", IsFeatured: true})
	require.NoError(t, err)
	_, err = repo.Create(ServiceInput{Title: "Plumbing", Slug: "plumbing"})
	require.NoError(t, err)
	_, err = repo.Create(ServiceInput{Title: "Framing", Slug: "framing", IsFeatured: true})
	require.NoError(t, err)

	all, err := repo.List(ServiceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// ascending id ordering
	assert.Equal(t, "roofing", all[0].Slug)
	assert.Equal(t, "framing", all[2].Slug)

	featured, err := repo.List(ServiceFilter{Featured: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, svc := range featured {
		assert.True(t, svc.IsFeatured)
	}
}

func TestServiceSlugConflict(t *testing.T) {
	gdb := setupTestDB(t)
	notifier, _ := recordingNotifier()
	repo := NewServiceRepository(gdb, notifier)

	_, err := repo.Create(ServiceInput{Title: "Roofing", Slug: "roofing"})
	require.NoError(t, err)

	_, err = repo.Create(ServiceInput{Title: "Roofing Again", Slug: "roofing"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestServiceUpdateInvalidatesOldSlug(t *testing.T) {
	gdb := setupTestDB(t)
	notifier, paths := recordingNotifier()
	repo := NewServiceRepository(gdb, notifier)

	created, err := repo.Create(ServiceInput{Title: "Roofing", Slug: "roofing"})
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, ServiceInput{Title: "Metal Roofing", Slug: "metal-roofing"})
	require.NoError(t, err)
	assert.Equal(t, "metal-roofing", updated.Slug)

	assert.Contains(t, *paths, "/services/metal-roofing")
	assert.Contains(t, *paths, "/services/roofing")
	assert.Contains(t, *paths, "/admin/services")
}

func TestServiceDeleteRemovesRow(t *testing.T) {
	gdb := setupTestDB(t)
	notifier, _ := recordingNotifier()
	repo := NewServiceRepository(gdb, notifier)

	created, err := repo.Create(ServiceInput{Title: "Roofing", Slug: "roofing"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceDeleteFreesSlugForReuse(t *testing.T) {
	gdb := setupTestDB(t)
	notifier, _ := recordingNotifier()
	repo := NewServiceRepository(gdb, notifier)

	created, err := repo.Create(ServiceInput{Title: "Roofing", Slug: "roofing"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	recreated, err := repo.Create(ServiceInput{Title: "Roofing v2", Slug: "roofing"})
	require.NoError(t, err)
	assert.Equal(t, "roofing", recreated.Slug)
}

func TestServiceGetMissingReturnsNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	notifier, _ := recordingNotifier()
	repo := NewServiceRepository(gdb, notifier)

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetBySlug("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
