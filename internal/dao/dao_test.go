package dao

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/second-brain-service/internal/domain"
	"github.com/haierkeys/second-brain-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()
	db, err := NewDBEngine(&DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrateAll(db))
	return New(db)
}

func newContent(sub string, cType domain.ContentType, title, payload string) *domain.Content {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Content{
		Sub:           sub,
		Title:         title,
		Type:          cType,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	c.SetPayload(payload)
	return c
}

func TestContentRepository_CreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewContentRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, newContent("u1", domain.ContentTypeNote, "idea", "remember this"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.Sub)
	assert.Equal(t, domain.ContentTypeNote, got.Type)
	assert.Equal(t, "remember this", got.NoteContent)
	assert.Empty(t, got.LinkURL)
}

func TestContentRepository_GetByID_NotFound(t *testing.T) {
	d := newTestDao(t)
	repo := NewContentRepository(d)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentRepository_ListBySub_OrderAndIsolation(t *testing.T) {
	d := newTestDao(t)
	repo := NewContentRepository(d)
	ctx := context.Background()

	older := newContent("u1", domain.ContentTypeNote, "old", "a")
	older.LastUpdatedAt = time.Now().UTC().Add(-time.Hour)
	_, err := repo.Create(ctx, older)
	require.NoError(t, err)

	newer, err := repo.Create(ctx, newContent("u1", domain.ContentTypeLink, "new", "https://example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newContent("u2", domain.ContentTypeNote, "other user", "b"))
	require.NoError(t, err)

	list, err := repo.ListBySub(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, "old", list[1].Title)
}

func TestContentRepository_Update_ClearsStaleVariantFields(t *testing.T) {
	d := newTestDao(t)
	repo := NewContentRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, newContent("u1", domain.ContentTypeNote, "idea", "text"))
	require.NoError(t, err)

	created.Type = domain.ContentTypeLink
	created.SetPayload("https://example.com")
	created.LastUpdatedAt = time.Now().UTC()

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", updated.LinkURL)
	assert.Empty(t, updated.NoteContent)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.NoteContent)
	assert.Equal(t, "https://example.com", got.LinkURL)
}

func TestContentRepository_Delete(t *testing.T) {
	d := newTestDao(t)
	repo := NewContentRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, newContent("u1", domain.ContentTypeNote, "idea", "text"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrNotFound)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentRepository_ListImageURLs(t *testing.T) {
	d := newTestDao(t)
	repo := NewContentRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, newContent("u1", domain.ContentTypeImage, "pic", "http://localhost/uploads/u1/a.png"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newContent("u2", domain.ContentTypeImage, "pic2", "http://localhost/uploads/u2/b.png"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newContent("u1", domain.ContentTypeNote, "idea", "text"))
	require.NoError(t, err)

	urls, err := repo.ListImageURLs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"http://localhost/uploads/u1/a.png",
		"http://localhost/uploads/u2/b.png",
	}, urls)
}

func TestShareLinkRepository_CreateAndLookup(t *testing.T) {
	d := newTestDao(t)
	repo := NewShareLinkRepository(d)
	ctx := context.Background()

	now := time.Now().UTC()
	created, err := repo.Create(ctx, &domain.ShareLink{
		Sub:       "u1",
		Hash:      "abcdefghijklmnopqrstu",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetBySub(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmnopqrstu", got.Hash)
	assert.True(t, got.Active)

	byHash, err := repo.GetActiveByHash(ctx, "abcdefghijklmnopqrstu")
	require.NoError(t, err)
	assert.Equal(t, "u1", byHash.Sub)
}

func TestShareLinkRepository_DuplicateSub(t *testing.T) {
	d := newTestDao(t)
	repo := NewShareLinkRepository(d)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := repo.Create(ctx, &domain.ShareLink{Sub: "u1", Hash: "hash-one", Active: true, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.ShareLink{Sub: "u1", Hash: "hash-two", Active: true, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestShareLinkRepository_UpdateActive(t *testing.T) {
	d := newTestDao(t)
	repo := NewShareLinkRepository(d)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := repo.Create(ctx, &domain.ShareLink{Sub: "u1", Hash: "hash-one", Active: true, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	updated, err := repo.UpdateActive(ctx, "u1", false)
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "hash-one", updated.Hash)

	_, err = repo.GetActiveByHash(ctx, "hash-one")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.UpdateActive(ctx, "missing", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
