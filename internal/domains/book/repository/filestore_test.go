package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"safaia-backend/internal/domains/book/model"

	"github.com/stretchr/testify/require"
)

func testBook(id int, slug, title string) model.Book {
	return model.Book{
		ID:       id,
		Slug:     slug,
		Title:    title,
		Category: "Art",
		Author:   model.Author{Name: "Anna Kowalska"},
	}
}

func TestListAllFirstRun(t *testing.T) {
	repo := NewFileRepository(t.TempDir())

	books, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, books)
}

func TestCreateAndGetBySlug(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	created, err := repo.Create(ctx, testBook(1, "sztuka-ikebany", "Japońska sztuka ikebany"))
	require.NoError(t, err)
	require.Equal(t, "sztuka-ikebany", created.Slug)

	got, err := repo.GetBySlug(ctx, "sztuka-ikebany")
	require.NoError(t, err)
	require.Equal(t, "Japońska sztuka ikebany", got.Title)
	require.Equal(t, 1, got.ID)
}

func TestCreateDuplicateSlug(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	_, err := repo.Create(ctx, testBook(1, "moda-paryska", "Moda paryska"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testBook(2, "moda-paryska", "Inna książka"))
	require.ErrorIs(t, err, model.ErrSlugAlreadyExists)
}

func TestGetBySlugNotFound(t *testing.T) {
	repo := NewFileRepository(t.TempDir())

	_, err := repo.GetBySlug(context.Background(), "nie-ma")
	require.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestUpdatePartialMerge(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	book := testBook(1, "fotografia-gorska", "Fotografia górska")
	book.Description = "original description"
	book.Pages = 240
	_, err := repo.Create(ctx, book)
	require.NoError(t, err)

	patch := model.Patch{"title": json.RawMessage(`"Fotografia górska II"`)}
	updated, err := repo.Update(ctx, "fotografia-gorska", patch)
	require.NoError(t, err)

	// Only the patched key changes, everything else is preserved.
	require.Equal(t, "Fotografia górska II", updated.Title)
	require.Equal(t, "original description", updated.Description)
	require.Equal(t, 240, updated.Pages)
	require.Equal(t, "Anna Kowalska", updated.Author.Name)
}

func TestUpdateNestedObjectReplacedWholesale(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	book := testBook(1, "haft-ludowy", "Haft ludowy")
	book.Author = model.Author{Name: "Maria Nowak", Bio: "ethnographer", Email: "maria@safaia.pl"}
	_, err := repo.Create(ctx, book)
	require.NoError(t, err)

	patch := model.Patch{"author": json.RawMessage(`{"name":"Jan Wiśniewski"}`)}
	updated, err := repo.Update(ctx, "haft-ludowy", patch)
	require.NoError(t, err)

	// The nested object is replaced, not deep-merged: the old bio and
	// email are gone.
	require.Equal(t, "Jan Wiśniewski", updated.Author.Name)
	require.Empty(t, updated.Author.Bio)
	require.Empty(t, updated.Author.Email)
}

func TestUpdateIgnoresIDKey(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	_, err := repo.Create(ctx, testBook(7, "kuchnia-staropolska", "Kuchnia staropolska"))
	require.NoError(t, err)

	patch := model.Patch{
		"id":    json.RawMessage(`99`),
		"pages": json.RawMessage(`512`),
	}
	updated, err := repo.Update(ctx, "kuchnia-staropolska", patch)
	require.NoError(t, err)
	require.Equal(t, 7, updated.ID)
	require.Equal(t, 512, updated.Pages)
}

func TestUpdateSlugRenameCollision(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	_, err := repo.Create(ctx, testBook(1, "pierwsza", "Pierwsza"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBook(2, "druga", "Druga"))
	require.NoError(t, err)

	patch := model.Patch{"slug": json.RawMessage(`"druga"`)}
	_, err = repo.Update(ctx, "pierwsza", patch)
	require.ErrorIs(t, err, model.ErrSlugAlreadyExists)
}

func TestUpdateSlugRenameToSelf(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	_, err := repo.Create(ctx, testBook(1, "jedyna", "Jedyna"))
	require.NoError(t, err)

	patch := model.Patch{"slug": json.RawMessage(`"jedyna"`)}
	updated, err := repo.Update(ctx, "jedyna", patch)
	require.NoError(t, err)
	require.Equal(t, "jedyna", updated.Slug)
}

func TestUpdateNotFound(t *testing.T) {
	repo := NewFileRepository(t.TempDir())

	_, err := repo.Update(context.Background(), "nie-ma", model.Patch{})
	require.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestDeleteKeepsOrder(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	for i, slug := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, testBook(i+1, slug, slug))
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, "b"))

	books, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, "a", books[0].Slug)
	require.Equal(t, "c", books[1].Slug)
}

func TestDeleteNotFound(t *testing.T) {
	repo := NewFileRepository(t.TempDir())

	err := repo.Delete(context.Background(), "nie-ma")
	require.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestCorruptFileSurfacesReadError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, booksFileName), []byte("{not json"), 0o644))

	repo := NewFileRepository(dir)
	_, err := repo.ListAll(context.Background())
	require.ErrorIs(t, err, model.ErrStoreRead)
}
