package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"safaia-backend/internal/domains/settings/model"

	"github.com/stretchr/testify/require"
)

func TestGetFirstReadPersistsDefaults(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.Default(), *got)

	// The defaults are written to disk, not just returned.
	_, err = os.Stat(filepath.Join(dir, settingsFileName))
	require.NoError(t, err)
}

func TestSaveOverwritesWholeRecord(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx := context.Background()

	settings := model.Default()
	settings.About.Title = "O wydawnictwie"
	settings.Contact.Email = "nowy@safaia.pl"
	settings.Values = nil

	require.NoError(t, repo.Save(ctx, settings))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "O wydawnictwie", got.About.Title)
	require.Equal(t, "nowy@safaia.pl", got.Contact.Email)
	require.Empty(t, got.Values)
}

func TestGetCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte("][ not json"), 0o644))

	repo := NewFileRepository(dir)
	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, model.ErrStoreRead)
}
