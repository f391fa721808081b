package credentials

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/linkfolio/internal/server/storage"
)

type FileRepository struct {
	file *storage.JSONFile
	mu   sync.Mutex
}

func NewFileRepository(file *storage.JSONFile) *FileRepository {
	return &FileRepository{file: file}
}

func (r *FileRepository) Read(ctx context.Context) (*Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var c Credential
	if err := r.file.Load(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *FileRepository) Write(ctx context.Context, c *Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.file.Store(c); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}
	return nil
}
