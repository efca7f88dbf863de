package resumes

import "context"

// Repo defines persistence operations for resumes and their extracted rows.
type Repo interface {
	Create(ctx context.Context, res Resume) error
	Update(ctx context.Context, res Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
	ListCompleted(ctx context.Context, limit, offset int) ([]Resume, error)
}
