package links

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dmitrijs2005/linkfolio/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: url must be absolute", common.ErrorValidation)
	}
	return nil
}

// ListAll returns every stored link, visible or not, for the admin surface.
func (s *Service) ListAll(ctx context.Context) ([]Link, error) {
	return s.repo.List(ctx)
}

// ListVisible returns the active links in display order: ascending by the
// order attribute, ties resolved by original insertion order (stable sort).
func (s *Service) ListVisible(ctx context.Context) ([]Link, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]Link, 0, len(links))
	for _, l := range links {
		if l.IsActive {
			visible = append(visible, l)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	return visible, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Link, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Link, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if err := validateURL(params.URL); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*Link, error) {
	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if params.URL != nil {
		if err := validateURL(*params.URL); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Reorder assigns order = position for each id in idsInOrder and persists the
// full set. Links omitted from the input keep their record and their previous
// order value; a reorder request is not a replacement of the collection.
// Unknown ids are ignored. Returns the whole collection sorted by the new
// order.
func (s *Service) Reorder(ctx context.Context, idsInOrder []string) ([]Link, error) {
	orders := make(map[string]int, len(idsInOrder))
	for pos, id := range idsInOrder {
		orders[id] = pos
	}

	links, err := s.repo.UpdateOrders(ctx, orders)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Order < links[j].Order
	})

	return links, nil
}
