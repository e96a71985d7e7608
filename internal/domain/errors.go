package domain

import "errors"

var (
	// ErrPersistenceRead indicates a stored value could not be read or parsed.
	ErrPersistenceRead = errors.New("persistence read failed")
	// ErrPersistenceWrite indicates a value could not be written to storage.
	ErrPersistenceWrite = errors.New("persistence write failed")
	// ErrInvalidInput indicates out-of-range or non-numeric measurement values.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPhotoDecode indicates the uploaded file is not a readable image.
	ErrPhotoDecode = errors.New("photo is not a readable image")
	// ErrIndexOutOfRange indicates a positional delete referenced no element.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEntryDeleteDisabled indicates measurement deletion is switched off.
	ErrEntryDeleteDisabled = errors.New("entry deletion is disabled")
	// ErrNoData indicates there are no measurement entries yet.
	ErrNoData = errors.New("no data available")
)
