package scripts

import (
	"MaskingBackend/internal/model"
	"MaskingBackend/internal/repository/filesystem"
	"MaskingBackend/internal/repository/sqldb"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
}

func TestSyncJournal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cars", "Images", "a.jpg"))
	writeFile(t, filepath.Join(root, "cars", "Masks", "a_mask.png"))
	writeFile(t, filepath.Join(root, "cars", "Masks", "image_4_mask.png"))
	writeFile(t, filepath.Join(root, "cars", "Masks", "kept_mask.png"))
	writeFile(t, filepath.Join(root, "boats", "Images", "b.png"))

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	repo := sqldb.NewAnnotationRepository(db)
	require.NoError(t, repo.EnsureSchema())
	require.NoError(t, repo.Upsert(model.Annotation{Category: "cars", ImageName: "kept.png", MaskName: "kept_mask.png", ByteSize: 4, SavedAt: time.Now()}))
	require.NoError(t, repo.Upsert(model.Annotation{Category: "cars", ImageName: "gone.png", MaskName: "gone_mask.png", ByteSize: 4, SavedAt: time.Now()}))

	removed, added, err := SyncJournal(repo, filesystem.NewCatalog(root))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, added)

	annotations, err := repo.ListByCategory("cars")
	require.NoError(t, err)
	var names []string
	for _, a := range annotations {
		names = append(names, a.ImageName)
	}
	assert.Equal(t, []string{"a.jpg", "image_4", "kept.png"}, names)

	removed, added, err = SyncJournal(repo, filesystem.NewCatalog(root))
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Zero(t, added)
}
