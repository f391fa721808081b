package links

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/linkfolio/internal/common"
	"github.com/dmitrijs2005/linkfolio/internal/server/storage"
	"github.com/google/uuid"
)

// FileRepository persists the whole link collection in one JSON file. All
// mutations run the full read-modify-write cycle under mu.
type FileRepository struct {
	file *storage.JSONFile
	mu   sync.Mutex
}

func NewFileRepository(file *storage.JSONFile) *FileRepository {
	return &FileRepository{file: file}
}

func (r *FileRepository) load() ([]Link, error) {
	var links []Link
	if err := r.file.Load(&links); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return []Link{}, nil
		}
		return nil, err
	}
	return links, nil
}

func (r *FileRepository) List(ctx context.Context) ([]Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileRepository) Get(ctx context.Context, id string) (*Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range links {
		if links[i].ID == id {
			return &links[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *FileRepository) Create(ctx context.Context, params CreateParams) (*Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load()
	if err != nil {
		return nil, err
	}

	active := true
	if params.IsActive != nil {
		active = *params.IsActive
	}

	now := time.Now().UTC()
	link := Link{
		ID:        uuid.NewString(),
		Title:     params.Title,
		URL:       params.URL,
		Icon:      params.Icon,
		Order:     params.Order,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	links = append(links, link)
	if err := r.file.Store(links); err != nil {
		return nil, fmt.Errorf("persisting links: %w", err)
	}

	return &link, nil
}

func (r *FileRepository) Update(ctx context.Context, id string, params UpdateParams) (*Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range links {
		if links[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, common.ErrorNotFound
	}

	l := &links[idx]
	if params.Title != nil {
		l.Title = *params.Title
	}
	if params.URL != nil {
		l.URL = *params.URL
	}
	if params.Icon != nil {
		l.Icon = *params.Icon
	}
	if params.Order != nil {
		l.Order = *params.Order
	}
	if params.IsActive != nil {
		l.IsActive = *params.IsActive
	}
	l.UpdatedAt = time.Now().UTC()

	if err := r.file.Store(links); err != nil {
		return nil, fmt.Errorf("persisting links: %w", err)
	}

	out := *l
	return &out, nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load()
	if err != nil {
		return err
	}

	remaining := links[:0:0]
	for i := range links {
		if links[i].ID != id {
			remaining = append(remaining, links[i])
		}
	}
	if len(remaining) == len(links) {
		return common.ErrorNotFound
	}

	if err := r.file.Store(remaining); err != nil {
		return fmt.Errorf("persisting links: %w", err)
	}
	return nil
}

func (r *FileRepository) UpdateOrders(ctx context.Context, orders map[string]int) ([]Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	links, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range links {
		if pos, ok := orders[links[i].ID]; ok {
			links[i].Order = pos
			links[i].UpdatedAt = now
		}
	}

	if err := r.file.Store(links); err != nil {
		return nil, fmt.Errorf("persisting links: %w", err)
	}

	return links, nil
}
