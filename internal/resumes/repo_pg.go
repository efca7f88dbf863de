package resumes

import (
	"context"
	"database/sql"
	"errors"

	"nextskill-backend/internal/nlp"
)

// PGRepo implements Repo using Postgres. Extracted skills and entries live in
// child tables keyed by resume_id; the position column preserves discovery
// order.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, file_name, mime_type, size_bytes, checksum, storage_key, extracted_text_key, status, parse_error, full_name, email, phone_number, summary, years_of_experience, created_at, updated_at`

// Create inserts a resume with its child rows in one transaction.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const query = `
INSERT INTO resumes (
    id,
    file_name,
    mime_type,
    size_bytes,
    checksum,
    storage_key,
    extracted_text_key,
    status,
    parse_error,
    full_name,
    email,
    phone_number,
    summary,
    years_of_experience,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	if _, err := tx.ExecContext(
		ctx,
		query,
		res.ID,
		res.FileName,
		res.MimeType,
		res.SizeBytes,
		nullString(res.Checksum),
		res.StorageKey,
		nullString(res.ExtractedTextKey),
		string(res.Status),
		nullString(res.ParseError),
		nullString(res.FullName),
		nullString(res.Email),
		nullString(res.PhoneNumber),
		nullString(res.Summary),
		nullInt(res.YearsOfExperience),
		res.CreatedAt,
		res.UpdatedAt,
	); err != nil {
		return err
	}

	if err := insertChildren(ctx, tx, res); err != nil {
		return err
	}
	return tx.Commit()
}

// Update rewrites the resume row and replaces its child rows.
func (r *PGRepo) Update(ctx context.Context, res Resume) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const query = `
UPDATE resumes
SET file_name = $2,
    mime_type = $3,
    size_bytes = $4,
    checksum = $5,
    storage_key = $6,
    extracted_text_key = $7,
    status = $8,
    parse_error = $9,
    full_name = $10,
    email = $11,
    phone_number = $12,
    summary = $13,
    years_of_experience = $14,
    updated_at = $15
WHERE id = $1`

	result, err := tx.ExecContext(
		ctx,
		query,
		res.ID,
		res.FileName,
		res.MimeType,
		res.SizeBytes,
		nullString(res.Checksum),
		res.StorageKey,
		nullString(res.ExtractedTextKey),
		string(res.Status),
		nullString(res.ParseError),
		nullString(res.FullName),
		nullString(res.Email),
		nullString(res.PhoneNumber),
		nullString(res.Summary),
		nullInt(res.YearsOfExperience),
		res.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	for _, table := range []string{"resume_skills", "resume_experiences", "resume_projects", "resume_certifications"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE resume_id = $1`, res.ID); err != nil {
			return err
		}
	}
	if err := insertChildren(ctx, tx, res); err != nil {
		return err
	}
	return tx.Commit()
}

func insertChildren(ctx context.Context, tx *sql.Tx, res Resume) error {
	for i, s := range res.Skills {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO resume_skills (resume_id, position, skill_name, category, confidence)
VALUES ($1, $2, $3, $4, $5)`, res.ID, i, s.Name, s.Category, s.Confidence); err != nil {
			return err
		}
	}
	for i, e := range res.Experiences {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO resume_experiences (resume_id, position, job_title, company_name)
VALUES ($1, $2, $3, $4)`, res.ID, i, e.JobTitle, e.CompanyName); err != nil {
			return err
		}
	}
	for i, p := range res.Projects {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO resume_projects (resume_id, position, project_name, description)
VALUES ($1, $2, $3, $4)`, res.ID, i, p.ProjectName, p.Description); err != nil {
			return err
		}
	}
	for i, c := range res.Certifications {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO resume_certifications (resume_id, position, certification_name, issuing_organization)
VALUES ($1, $2, $3, $4)`, res.ID, i, c.CertificationName, c.IssuingOrganization); err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches a resume with all extracted rows.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	res, err := r.scanResume(r.DB.QueryRowContext(ctx, `
SELECT `+resumeColumns+`
FROM resumes
WHERE id = $1
LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}

	if err := r.loadChildren(ctx, &res); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// ListCompleted lists completed resumes newest-first. Child rows are not
// loaded; list views only need the top-level fields.
func (r *PGRepo) ListCompleted(ctx context.Context, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, `
SELECT `+resumeColumns+`
FROM resumes
WHERE status = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`, string(StatusCompleted), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		res, err := r.scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanResume(row rowScanner) (Resume, error) {
	var res Resume
	var checksum sql.NullString
	var extractedKey sql.NullString
	var parseError sql.NullString
	var fullName sql.NullString
	var email sql.NullString
	var phone sql.NullString
	var summary sql.NullString
	var years sql.NullInt64
	var status string
	err := row.Scan(
		&res.ID,
		&res.FileName,
		&res.MimeType,
		&res.SizeBytes,
		&checksum,
		&res.StorageKey,
		&extractedKey,
		&status,
		&parseError,
		&fullName,
		&email,
		&phone,
		&summary,
		&years,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	res.Status = Status(status)
	if checksum.Valid {
		res.Checksum = checksum.String
	}
	if extractedKey.Valid {
		res.ExtractedTextKey = extractedKey.String
	}
	if parseError.Valid {
		res.ParseError = parseError.String
	}
	if fullName.Valid {
		res.FullName = fullName.String
	}
	if email.Valid {
		res.Email = email.String
	}
	if phone.Valid {
		res.PhoneNumber = phone.String
	}
	if summary.Valid {
		res.Summary = summary.String
	}
	if years.Valid {
		res.YearsOfExperience = int(years.Int64)
	}
	return res, nil
}

func (r *PGRepo) loadChildren(ctx context.Context, res *Resume) error {
	rows, err := r.DB.QueryContext(ctx, `
SELECT skill_name, category, confidence
FROM resume_skills
WHERE resume_id = $1
ORDER BY position`, res.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var s nlp.SkillMatch
		if err := rows.Scan(&s.Name, &s.Category, &s.Confidence); err != nil {
			return err
		}
		res.Skills = append(res.Skills, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	expRows, err := r.DB.QueryContext(ctx, `
SELECT job_title, company_name
FROM resume_experiences
WHERE resume_id = $1
ORDER BY position`, res.ID)
	if err != nil {
		return err
	}
	defer expRows.Close()
	for expRows.Next() {
		var e nlp.ExperienceEntry
		if err := expRows.Scan(&e.JobTitle, &e.CompanyName); err != nil {
			return err
		}
		res.Experiences = append(res.Experiences, e)
	}
	if err := expRows.Err(); err != nil {
		return err
	}

	projRows, err := r.DB.QueryContext(ctx, `
SELECT project_name, description
FROM resume_projects
WHERE resume_id = $1
ORDER BY position`, res.ID)
	if err != nil {
		return err
	}
	defer projRows.Close()
	for projRows.Next() {
		var p nlp.ProjectEntry
		if err := projRows.Scan(&p.ProjectName, &p.Description); err != nil {
			return err
		}
		res.Projects = append(res.Projects, p)
	}
	if err := projRows.Err(); err != nil {
		return err
	}

	certRows, err := r.DB.QueryContext(ctx, `
SELECT certification_name, issuing_organization
FROM resume_certifications
WHERE resume_id = $1
ORDER BY position`, res.ID)
	if err != nil {
		return err
	}
	defer certRows.Close()
	for certRows.Next() {
		var c nlp.CertificationEntry
		if err := certRows.Scan(&c.CertificationName, &c.IssuingOrganization); err != nil {
			return err
		}
		res.Certifications = append(res.Certifications, c)
	}
	return certRows.Err()
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(n int) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(n), Valid: true}
}

var _ Repo = (*PGRepo)(nil)
