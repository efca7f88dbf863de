package resumes

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"nextskill-backend/internal/extract"
	"nextskill-backend/internal/nlp"
	"nextskill-backend/internal/shared/metrics"
	"nextskill-backend/internal/shared/storage/object"
	"nextskill-backend/internal/shared/util"
)

const maxUploadBytes = 10 << 20 // 10MB

const storageScope = "resumes"

// Service runs the upload-extract-parse pipeline and owns the resume
// lifecycle: PENDING -> PROCESSING -> COMPLETED or FAILED. A failed parse is
// recorded on the resume, not returned as a service error; fields extracted
// before the failure survive.
type Service struct {
	Store  object.ObjectStore
	Repo   Repo
	Engine *nlp.Engine
}

// ProcessUpload stores the file, extracts its text, parses it and persists
// the full record.
func (s *Service) ProcessUpload(ctx context.Context, fileName, mimeType string, r io.Reader) (Resume, error) {
	if fileName == "" {
		return Resume{}, ErrInvalidInput
	}
	data, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return Resume{}, err
	}
	if len(data) == 0 {
		return Resume{}, ErrInvalidInput
	}
	if int64(len(data)) > maxUploadBytes {
		return Resume{}, ErrFileTooLarge
	}
	if !extract.Supported(mimeType, fileName, data) {
		return Resume{}, ErrUnsupportedFile
	}

	storageKey, size, storedMime, err := s.Store.Save(ctx, storageScope, fileName, bytes.NewReader(data))
	if err != nil {
		return Resume{}, err
	}
	if mimeType == "" {
		mimeType = storedMime
	}

	now := time.Now().UTC()
	res := Resume{
		ID:         uuid.NewString(),
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		Checksum:   util.Sum256Hex(data),
		StorageKey: storageKey,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}

	return s.runPipeline(ctx, res)
}

// ParseText runs the engine over raw text without persisting anything.
func (s *Service) ParseText(_ context.Context, text string) (nlp.Parsed, error) {
	return s.Engine.Parse(text)
}

// Get returns a resume with all extracted rows.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	if id == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns completed resumes, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Resume, error) {
	return s.Repo.ListCompleted(ctx, limit, offset)
}

// Reparse re-runs extraction over the stored text of an existing resume,
// useful after dictionary or model updates.
func (s *Service) Reparse(ctx context.Context, id string) (Resume, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return Resume{}, err
	}
	if res.ExtractedTextKey == "" && res.StorageKey == "" {
		return s.recordFailure(ctx, res, ErrNoStoredText)
	}
	return s.runPipeline(ctx, res)
}

func (s *Service) runPipeline(ctx context.Context, res Resume) (Resume, error) {
	metrics.IncParseStarted()
	started := time.Now()

	res.Status = StatusProcessing
	res.ParseError = ""
	res.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, res); err != nil {
		return Resume{}, err
	}

	text, err := s.storedText(ctx, &res)
	if err != nil {
		return s.recordFailure(ctx, res, err)
	}

	parsed, err := s.Engine.Parse(text)
	if err != nil {
		return s.recordFailure(ctx, res, err)
	}

	res.FullName = parsed.FullName
	res.Email = parsed.Email
	res.PhoneNumber = parsed.PhoneNumber
	res.Summary = parsed.Summary
	res.YearsOfExperience = parsed.YearsOfExperience
	res.Skills = parsed.Skills
	res.Experiences = parsed.Experiences
	res.Projects = parsed.Projects
	res.Certifications = parsed.Certifications
	res.Status = StatusCompleted
	res.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, res); err != nil {
		return Resume{}, err
	}
	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	return res, nil
}

// storedText prefers the derived .extracted.txt object; when absent it
// re-runs binary extraction, which persists the derived object as a side
// effect.
func (s *Service) storedText(ctx context.Context, res *Resume) (string, error) {
	if res.ExtractedTextKey != "" {
		body, err := s.Store.Open(ctx, res.ExtractedTextKey)
		if err == nil {
			defer body.Close()
			raw, err := io.ReadAll(body)
			if err != nil {
				return "", err
			}
			return string(raw), nil
		}
		// fall through to re-extraction
	}
	if res.StorageKey == "" {
		return "", ErrNoStoredText
	}
	text, err := extract.Text(ctx, s.Store, res.StorageKey, res.MimeType, res.FileName)
	if err != nil {
		return "", err
	}
	res.ExtractedTextKey = res.StorageKey + ".extracted.txt"
	return text, nil
}

func (s *Service) recordFailure(ctx context.Context, res Resume, cause error) (Resume, error) {
	metrics.IncParseFailed()
	res.Status = StatusFailed
	res.ParseError = cause.Error()
	res.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, res); err != nil {
		return Resume{}, err
	}
	return res, nil
}
