package profile

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*Profile, error) {
	return s.repo.Read(ctx)
}

func (s *Service) Update(ctx context.Context, params UpdateParams) (*Profile, error) {
	return s.repo.Update(ctx, params)
}

// SetImageURL records the uploaded avatar location on the profile.
func (s *Service) SetImageURL(ctx context.Context, imageURL string) (*Profile, error) {
	return s.repo.Update(ctx, UpdateParams{ImageURL: &imageURL})
}
