package scripts

import (
	"MaskingBackend/internal/model"
	"MaskingBackend/internal/repository/filesystem"
	"errors"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

type JournalStore interface {
	All() ([]model.Annotation, error)
	Upsert(a model.Annotation) error
	Delete(category, imageName string) error
}

// SyncJournal makes the journal match the Masks folders: rows whose mask file
// is gone are deleted, masks on disk without a row are added.
func SyncJournal(store JournalStore, catalog *filesystem.Catalog) (removed, added int, err error) {
	log.Println("Step 1: Checking journal entries against disk.")
	annotations, err := store.All()
	if err != nil {
		return 0, 0, err
	}

	known := make(map[string]bool)
	for _, a := range annotations {
		maskPath := filepath.Join(catalog.MasksDir(a.Category), a.MaskName)
		if filesystem.MaskExists(maskPath) {
			known[a.Category+"/"+a.MaskName] = true
			continue
		}
		log.Printf("Removing journal entry %s/%s, mask %s is gone", a.Category, a.ImageName, maskPath)
		if err := store.Delete(a.Category, a.ImageName); err != nil {
			return removed, added, err
		}
		removed++
	}

	log.Println("Step 2: Adding masks missing from the journal.")
	categories, err := catalog.Categories()
	if err != nil {
		return removed, added, err
	}

	for _, category := range categories {
		masks, err := catalog.ListMasks(category)
		if errors.Is(err, filesystem.ErrDirectoryMissing) {
			continue
		}
		if err != nil {
			return removed, added, err
		}

		imageByMask := make(map[string]string)
		images, err := filesystem.ListImages(catalog.ImagesDir(category))
		if err != nil && !errors.Is(err, filesystem.ErrDirectoryMissing) {
			return removed, added, err
		}
		for _, img := range images {
			imageByMask[filesystem.MaskName(img)] = filepath.Base(img)
		}

		for _, mask := range masks {
			if known[category+"/"+mask] {
				continue
			}
			info, err := os.Stat(filepath.Join(catalog.MasksDir(category), mask))
			if err != nil {
				return removed, added, err
			}

			imageName, ok := imageByMask[mask]
			if !ok {
				imageName = strings.TrimSuffix(mask, filesystem.MaskSuffix)
			}

			if err := store.Upsert(model.Annotation{
				Category:  category,
				ImageName: imageName,
				MaskName:  mask,
				ByteSize:  int(info.Size()),
				SavedAt:   info.ModTime(),
			}); err != nil {
				return removed, added, err
			}
			log.Printf("Mask [%s/%s] added to journal.", category, mask)
			added++
		}
	}

	return removed, added, nil
}
