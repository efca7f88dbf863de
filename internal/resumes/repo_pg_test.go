package resumes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"nextskill-backend/internal/nlp"
)

func TestPGRepoCreateInsertsResumeAndChildren(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	res := Resume{
		ID:         "resume-1",
		FileName:   "resume.pdf",
		MimeType:   "application/pdf",
		SizeBytes:  1024,
		Checksum:   "deadbeef",
		StorageKey: "resumes/abc_resume.pdf",
		Status:     StatusCompleted,
		FullName:   "John Doe",
		Email:      "john.doe@example.com",
		Skills: []nlp.SkillMatch{
			{Name: "Java", Category: "Programming Languages", Confidence: 0.95},
		},
		Experiences: []nlp.ExperienceEntry{
			{JobTitle: "Senior Software Engineer", CompanyName: "Acme Corp"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			res.ID,
			res.FileName,
			res.MimeType,
			res.SizeBytes,
			sqlmock.AnyArg(), // checksum
			res.StorageKey,
			sqlmock.AnyArg(), // extracted_text_key
			string(res.Status),
			sqlmock.AnyArg(), // parse_error
			sqlmock.AnyArg(), // full_name
			sqlmock.AnyArg(), // email
			sqlmock.AnyArg(), // phone_number
			sqlmock.AnyArg(), // summary
			sqlmock.AnyArg(), // years_of_experience
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO resume_skills").
		WithArgs(res.ID, 0, "Java", "Programming Languages", 0.95).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO resume_experiences").
		WithArgs(res.ID, 0, "Senior Software Engineer", "Acme Corp").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE resumes").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = repo.Update(context.Background(), Resume{ID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoGetByIDLoadsChildren(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	cols := []string{
		"id", "file_name", "mime_type", "size_bytes", "checksum", "storage_key",
		"extracted_text_key", "status", "parse_error", "full_name", "email",
		"phone_number", "summary", "years_of_experience", "created_at", "updated_at",
	}
	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"resume-1", "resume.pdf", "application/pdf", int64(1024), "deadbeef",
			"resumes/abc_resume.pdf", "resumes/abc_resume.pdf.extracted.txt",
			"COMPLETED", nil, "John Doe", "john.doe@example.com", nil, nil,
			int64(8), now, now,
		))
	mock.ExpectQuery("FROM resume_skills").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows([]string{"skill_name", "category", "confidence"}).
			AddRow("Java", "Programming Languages", 0.95).
			AddRow("Docker", "DevOps & Cloud", 0.95))
	mock.ExpectQuery("FROM resume_experiences").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows([]string{"job_title", "company_name"}))
	mock.ExpectQuery("FROM resume_projects").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows([]string{"project_name", "description"}))
	mock.ExpectQuery("FROM resume_certifications").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows([]string{"certification_name", "issuing_organization"}))

	res, err := repo.GetByID(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if res.Status != StatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", res.Status)
	}
	if res.Checksum != "deadbeef" {
		t.Fatalf("unexpected checksum %q", res.Checksum)
	}
	if res.YearsOfExperience != 8 {
		t.Fatalf("expected 8 years, got %d", res.YearsOfExperience)
	}
	if len(res.Skills) != 2 || res.Skills[0].Name != "Java" {
		t.Fatalf("unexpected skills %+v", res.Skills)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListCompletedCapsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	cols := []string{
		"id", "file_name", "mime_type", "size_bytes", "checksum", "storage_key",
		"extracted_text_key", "status", "parse_error", "full_name", "email",
		"phone_number", "summary", "years_of_experience", "created_at", "updated_at",
	}
	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("COMPLETED", 100, 0).
		WillReturnRows(sqlmock.NewRows(cols))

	if _, err := repo.ListCompleted(context.Background(), 5000, -3); err != nil {
		t.Fatalf("ListCompleted: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
