package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/linkfolio/internal/common"
	"github.com/dmitrijs2005/linkfolio/internal/server/storage"
	"github.com/google/uuid"
)

// FileRepository persists the whole user collection in one JSON file. Every
// mutation is a read-modify-write of the full file, serialized by mu so
// concurrent requests cannot lose each other's writes.
type FileRepository struct {
	file *storage.JSONFile
	mu   sync.Mutex
}

func NewFileRepository(file *storage.JSONFile) *FileRepository {
	return &FileRepository{file: file}
}

// load treats an absent file as an empty collection; the users file is never
// materialized with defaults, it appears on first registration.
func (r *FileRepository) load() ([]User, error) {
	var users []User
	if err := r.file.Load(&users); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return []User{}, nil
		}
		return nil, err
	}
	return users, nil
}

func (r *FileRepository) List(ctx context.Context) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileRepository) Get(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *FileRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *FileRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *FileRepository) Create(ctx context.Context, params CreateParams) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	// email is unique within the collection
	for i := range users {
		if strings.EqualFold(users[i].Email, params.Email) {
			return nil, common.ErrorAlreadyExists
		}
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.NewString(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Name:         params.Name,
		Bio:          params.Bio,
		Avatar:       params.Avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	users = append(users, user)
	if err := r.file.Store(users); err != nil {
		return nil, fmt.Errorf("persisting users: %w", err)
	}

	return &user, nil
}

func (r *FileRepository) Update(ctx context.Context, id string, params UpdateParams) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, common.ErrorNotFound
	}

	// email stays unique across merges too
	if params.Email != nil {
		for i := range users {
			if i != idx && strings.EqualFold(users[i].Email, *params.Email) {
				return nil, common.ErrorAlreadyExists
			}
		}
	}

	u := &users[idx]
	if params.Username != nil {
		u.Username = *params.Username
	}
	if params.Email != nil {
		u.Email = *params.Email
	}
	if params.PasswordHash != nil {
		u.PasswordHash = *params.PasswordHash
	}
	if params.Name != nil {
		u.Name = *params.Name
	}
	if params.Bio != nil {
		u.Bio = *params.Bio
	}
	if params.Avatar != nil {
		u.Avatar = *params.Avatar
	}
	u.UpdatedAt = time.Now().UTC()

	if err := r.file.Store(users); err != nil {
		return nil, fmt.Errorf("persisting users: %w", err)
	}

	out := *u
	return &out, nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	remaining := users[:0:0]
	for i := range users {
		if users[i].ID != id {
			remaining = append(remaining, users[i])
		}
	}
	if len(remaining) == len(users) {
		return common.ErrorNotFound
	}

	if err := r.file.Store(remaining); err != nil {
		return fmt.Errorf("persisting users: %w", err)
	}
	return nil
}
