package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/linkfolio/internal/common"
	"github.com/dmitrijs2005/linkfolio/internal/server/storage"
)

type FileRepository struct {
	file *storage.JSONFile
	mu   sync.Mutex
}

func NewFileRepository(file *storage.JSONFile) *FileRepository {
	return &FileRepository{file: file}
}

func (r *FileRepository) Read(ctx context.Context) (*Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var t Theme
	if err := r.file.Load(&t); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			def := Default()
			return &def, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *FileRepository) Write(ctx context.Context, t *Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.file.Store(t); err != nil {
		return fmt.Errorf("persisting theme: %w", err)
	}
	return nil
}
