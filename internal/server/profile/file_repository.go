package profile

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

func (r *FileRepository) read() (*Profile, error) {
	var p Profile
	if err := r.file.Load(&p); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			def := Default()
			return &def, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *FileRepository) Read(ctx context.Context) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *FileRepository) Update(ctx context.Context, params UpdateParams) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.read()
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.Bio != nil {
		p.Bio = *params.Bio
	}
	if params.Email != nil {
		p.Email = *params.Email
	}
	if params.Avatar != nil {
		p.Avatar = *params.Avatar
	}
	if params.ImageURL != nil {
		p.ImageURL = *params.ImageURL
	}
	if params.SocialLinks != nil {
		// wholesale replacement, no per-key merging of the nested map
		p.SocialLinks = params.SocialLinks
	}

	if err := r.file.Store(p); err != nil {
		return nil, fmt.Errorf("persisting profile: %w", err)
	}

	return p, nil
}

func (r *FileRepository) Write(ctx context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.file.Store(p); err != nil {
		return fmt.Errorf("persisting profile: %w", err)
	}
	return nil
}
