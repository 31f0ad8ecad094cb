package sqldb

import (
	"MaskingBackend/internal/model"
	"MaskingBackend/internal/natsort"
	"database/sql"
	"sort"

	log "github.com/sirupsen/logrus"
)

// The statements stick to SQL understood by both lib/pq and go-sqlite3.
const schema = `
	CREATE TABLE IF NOT EXISTS mask_annotations (
		category   TEXT      NOT NULL,
		image_name TEXT      NOT NULL,
		mask_name  TEXT      NOT NULL,
		byte_size  INTEGER   NOT NULL,
		saved_at   TIMESTAMP NOT NULL,
		PRIMARY KEY (category, image_name)
	)`

type AnnotationRepository struct {
	db *sql.DB
}

func NewAnnotationRepository(db *sql.DB) *AnnotationRepository {
	return &AnnotationRepository{db: db}
}

func (r *AnnotationRepository) EnsureSchema() error {
	_, err := r.db.Exec(schema)
	return err
}

// Upsert keeps one row per image: the latest save wins.
func (r *AnnotationRepository) Upsert(a model.Annotation) error {
	_, err := r.db.Exec(`
		INSERT INTO mask_annotations (category, image_name, mask_name, byte_size, saved_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (category, image_name)
		DO UPDATE SET mask_name = excluded.mask_name, byte_size = excluded.byte_size, saved_at = excluded.saved_at`,
		a.Category, a.ImageName, a.MaskName, a.ByteSize, a.SavedAt.UTC())
	return err
}

func (r *AnnotationRepository) ListByCategory(category string) ([]model.Annotation, error) {
	rows, err := r.db.Query(`
		SELECT category, image_name, mask_name, byte_size, saved_at
		FROM mask_annotations
		WHERE category = $1`, category)
	if err != nil {
		log.Printf("Error querying annotations for category %s: %v", category, err)
		return nil, err
	}
	return scanAnnotations(rows)
}

func (r *AnnotationRepository) All() ([]model.Annotation, error) {
	rows, err := r.db.Query(`SELECT category, image_name, mask_name, byte_size, saved_at FROM mask_annotations`)
	if err != nil {
		return nil, err
	}
	return scanAnnotations(rows)
}

func (r *AnnotationRepository) Delete(category, imageName string) error {
	_, err := r.db.Exec(`DELETE FROM mask_annotations WHERE category = $1 AND image_name = $2`, category, imageName)
	return err
}

func scanAnnotations(rows *sql.Rows) ([]model.Annotation, error) {
	defer rows.Close()

	var annotations []model.Annotation
	for rows.Next() {
		var a model.Annotation
		if err := rows.Scan(&a.Category, &a.ImageName, &a.MaskName, &a.ByteSize, &a.SavedAt); err != nil {
			log.Printf("Error scanning annotation row: %v", err)
			return nil, err
		}
		annotations = append(annotations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(annotations, func(i, j int) bool {
		if annotations[i].Category != annotations[j].Category {
			return natsort.Less(annotations[i].Category, annotations[j].Category)
		}
		return natsort.Less(annotations[i].ImageName, annotations[j].ImageName)
	})
	return annotations, nil
}
