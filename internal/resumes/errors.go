package resumes

import "errors"

var (
	// ErrNotFound indicates the resume does not exist.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidInput indicates missing or malformed caller input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFile indicates an upload that is neither PDF nor DOCX.
	ErrUnsupportedFile = errors.New("only PDF and DOCX files are allowed")

	// ErrFileTooLarge indicates an upload over the size cap.
	ErrFileTooLarge = errors.New("file size must be less than 10MB")

	// ErrNoStoredText indicates a reparse target with no stored text to re-run.
	ErrNoStoredText = errors.New("no stored text available for reparse")
)
