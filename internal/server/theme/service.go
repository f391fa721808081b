package theme

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*Theme, error) {
	return s.repo.Read(ctx)
}

// Update validates that all six fields are present and replaces the stored
// theme. Nothing is persisted when validation fails.
func (s *Service) Update(ctx context.Context, params UpdateParams) (*Theme, error) {
	t, err := params.Resolve()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Write(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
