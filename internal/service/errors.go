package service

import (
	"MaskingBackend/internal/codec"
	"MaskingBackend/internal/repository/filesystem"
	"errors"
)

// Anything not matching one of these is an I/O failure.
var (
	ErrDirectoryMissing = filesystem.ErrDirectoryMissing
	ErrIndexOutOfRange  = filesystem.ErrIndexOutOfRange
	ErrFileMissing      = filesystem.ErrNotFound
	ErrMalformedPayload = codec.ErrMalformedInput

	ErrNoCategories    = errors.New("no categories found")
	ErrJournalDisabled = errors.New("journal disabled")
)
