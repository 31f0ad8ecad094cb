package filesystem

import (
	"MaskingBackend/internal/model"
	"MaskingBackend/internal/natsort"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	ImagesFolder = "Images"
	MasksFolder  = "Masks"
	MaskSuffix   = "_mask.png"
)

var (
	ErrDirectoryMissing = errors.New("directory missing")
	ErrNotFound         = errors.New("not found")
	ErrIndexOutOfRange  = fmt.Errorf("%w: index out of range", ErrNotFound)
)

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// Catalog resolves categories, images and masks under a root data folder:
// <root>/<category>/Images/*.{jpg,jpeg,png} and <root>/<category>/Masks/<stem>_mask.png.
type Catalog struct {
	root string
}

func NewCatalog(root string) *Catalog {
	return &Catalog{root: root}
}

func (c *Catalog) Root() string {
	return c.root
}

func (c *Catalog) ImagesDir(category string) string {
	return filepath.Join(c.root, category, ImagesFolder)
}

func (c *Catalog) MasksDir(category string) string {
	return filepath.Join(c.root, category, MasksFolder)
}

// Categories returns the names of the subdirectories of the root in natural order.
func (c *Catalog) Categories() ([]string, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	natsort.Strings(names)
	return names, nil
}

// Summary counts the images and masks of a category. Missing folders count as empty.
func (c *Catalog) Summary(category string) (model.Category, error) {
	summary := model.Category{Name: category}

	images, err := ListImages(c.ImagesDir(category))
	if err != nil && !errors.Is(err, ErrDirectoryMissing) {
		return summary, err
	}
	summary.ImageCount = len(images)

	masks, err := c.ListMasks(category)
	if err != nil && !errors.Is(err, ErrDirectoryMissing) {
		return summary, err
	}
	summary.MaskCount = len(masks)

	return summary, nil
}

// ListMasks returns the mask file names of a category in natural order.
func (c *Catalog) ListMasks(category string) ([]string, error) {
	files, err := listFiles(c.MasksDir(category))
	if err != nil {
		return nil, err
	}

	var masks []string
	for _, f := range files {
		if strings.HasSuffix(f, MaskSuffix) {
			masks = append(masks, f)
		}
	}
	return masks, nil
}

// EnsureMasksDir creates the category's Masks folder if it does not exist yet.
func (c *Catalog) EnsureMasksDir(category string) error {
	if err := os.MkdirAll(c.MasksDir(category), 0o755); err != nil {
		return fmt.Errorf("create masks dir: %w", err)
	}
	return nil
}

// WriteMask writes data as the named mask of a category, replacing any previous file.
func (c *Catalog) WriteMask(category, maskName string, data []byte) (string, error) {
	path := filepath.Join(c.MasksDir(category), maskName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write mask: %w", err)
	}
	return path, nil
}

// ListImages lists the .jpg, .jpeg and .png regular files of dir in natural
// order as full paths. A missing dir yields ErrDirectoryMissing; an existing
// dir without images yields an empty slice.
func ListImages(dir string) ([]string, error) {
	files, err := listFiles(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, f := range files {
		if IsImageName(f) {
			paths = append(paths, filepath.Join(dir, f))
		}
	}
	return paths, nil
}

// IsImageName matches the extension case-sensitively.
func IsImageName(name string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ResolveByIndex picks paths[index] and checks that it is still a regular file.
func ResolveByIndex(paths []string, index int) (string, error) {
	if index < 0 || index >= len(paths) {
		return "", fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(paths))
	}

	path := paths[index]
	if !isRegularFile(path) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return path, nil
}

// MaskName maps photo.jpg to photo_mask.png.
func MaskName(imagePath string) string {
	base := filepath.Base(imagePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + MaskSuffix
}

// FallbackMaskName names a mask when the category has no Images folder to derive it from.
func FallbackMaskName(index int) string {
	return "image_" + strconv.Itoa(index) + MaskSuffix
}

func MaskPathFor(imagePath, masksDir string) string {
	return filepath.Join(masksDir, MaskName(imagePath))
}

func MaskExists(path string) bool {
	return isRegularFile(path)
}

// DirExists reports false without error when path is absent.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryMissing, dir)
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
			continue
		}
		// Symlinks count when they point at a regular file.
		if e.Type()&fs.ModeSymlink != 0 && isRegularFile(filepath.Join(dir, e.Name())) {
			names = append(names, e.Name())
		}
	}
	natsort.Strings(names)
	return names, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
