package service

import (
	"MaskingBackend/internal/codec"
	"MaskingBackend/internal/model"
	"MaskingBackend/internal/repository/filesystem"
	"MaskingBackend/internal/thumbnail"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

type MaskingService interface {
	GetMaskingData(category string, index int) (*model.MaskingData, error)
	SaveMask(category string, index int, req model.SaveMaskRequest) error
	FirstCategory() (string, error)
	ListCategories() ([]model.Category, error)
	Thumbnail(category string, index int) ([]byte, string, error)
	ListAnnotations(category string) ([]model.Annotation, error)
}

// AnnotationStore records server-side saves. It is optional.
type AnnotationStore interface {
	Upsert(a model.Annotation) error
	ListByCategory(category string) ([]model.Annotation, error)
}

type maskingServiceImpl struct {
	catalog   *filesystem.Catalog
	journal   AnnotationStore
	thumbSize uint
	now       func() time.Time
}

// NewMaskingService wires the catalog with an optional journal; pass a nil
// journal to disable it.
func NewMaskingService(catalog *filesystem.Catalog, journal AnnotationStore, thumbSize uint) MaskingService {
	return &maskingServiceImpl{
		catalog:   catalog,
		journal:   journal,
		thumbSize: thumbSize,
		now:       time.Now,
	}
}

func (s *maskingServiceImpl) imageAt(category string, index int) (string, error) {
	paths, err := filesystem.ListImages(s.catalog.ImagesDir(category))
	if err != nil {
		return "", err
	}
	return filesystem.ResolveByIndex(paths, index)
}

func (s *maskingServiceImpl) GetMaskingData(category string, index int) (*model.MaskingData, error) {
	imgPath, err := s.imageAt(category, index)
	if err != nil {
		return nil, err
	}
	log.Printf("Serving image %s", imgPath)

	data := &model.MaskingData{}
	data.Image, err = codec.EncodeFileAsDataURI(imgPath, codec.MimeTypeFor(imgPath))
	if err != nil {
		return nil, err
	}

	maskPath := filesystem.MaskPathFor(imgPath, s.catalog.MasksDir(category))
	if filesystem.MaskExists(maskPath) {
		data.Mask, err = codec.EncodeFileAsDataURI(maskPath, "image/png")
		if err != nil {
			return nil, err
		}
	}

	return data, nil
}

func (s *maskingServiceImpl) SaveMask(category string, index int, req model.SaveMaskRequest) error {
	// The browser already wrote the file through its own storage access.
	if req.ClientSideFile {
		log.Printf("Client-side save acknowledged for %s/%d", category, index)
		return nil
	}

	if err := s.catalog.EnsureMasksDir(category); err != nil {
		return err
	}

	imagesDir := s.catalog.ImagesDir(category)
	hasImages, err := filesystem.DirExists(imagesDir)
	if err != nil {
		return err
	}

	var imageName, maskName string
	if hasImages {
		paths, err := filesystem.ListImages(imagesDir)
		if err != nil {
			return err
		}
		imgPath, err := filesystem.ResolveByIndex(paths, index)
		if err != nil {
			return err
		}
		imageName = filepath.Base(imgPath)
		maskName = filesystem.MaskName(imgPath)
	} else {
		maskName = filesystem.FallbackMaskName(index)
		imageName = strings.TrimSuffix(maskName, filesystem.MaskSuffix)
	}

	mask, err := codec.DecodeDataURI(req.Mask)
	if err != nil {
		return err
	}

	maskPath, err := s.catalog.WriteMask(category, maskName, mask)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"category": category, "index": index, "bytes": len(mask)}).Infof("Saved mask %s", maskPath)

	s.record(model.Annotation{
		Category:  category,
		ImageName: imageName,
		MaskName:  maskName,
		ByteSize:  len(mask),
		SavedAt:   s.now(),
	})
	return nil
}

// record never fails the save; the mask file on disk is what counts.
func (s *maskingServiceImpl) record(a model.Annotation) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Upsert(a); err != nil {
		log.WithError(err).Errorf("Failed to journal mask %s/%s", a.Category, a.MaskName)
	}
}

func (s *maskingServiceImpl) FirstCategory() (string, error) {
	names, err := s.catalog.Categories()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrNoCategories
	}
	return names[0], nil
}

func (s *maskingServiceImpl) ListCategories() ([]model.Category, error) {
	names, err := s.catalog.Categories()
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(names))
	for _, name := range names {
		summary, err := s.catalog.Summary(name)
		if err != nil {
			log.Printf("Service error summarising category %s: %v", name, err)
			return nil, err
		}
		categories = append(categories, summary)
	}
	return categories, nil
}

func (s *maskingServiceImpl) Thumbnail(category string, index int) ([]byte, string, error) {
	imgPath, err := s.imageAt(category, index)
	if err != nil {
		return nil, "", err
	}
	data, mimeType, err := thumbnail.Generate(imgPath, s.thumbSize)
	if err != nil {
		return nil, "", fmt.Errorf("thumbnail %s: %w", filepath.Base(imgPath), err)
	}
	return data, mimeType, nil
}

func (s *maskingServiceImpl) ListAnnotations(category string) ([]model.Annotation, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}
	return s.journal.ListByCategory(category)
}
