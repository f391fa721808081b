package links

import "context"

type Repository interface {
	List(ctx context.Context) ([]Link, error)
	Get(ctx context.Context, id string) (*Link, error)
	Create(ctx context.Context, params CreateParams) (*Link, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Link, error)
	Delete(ctx context.Context, id string) error

	// UpdateOrders assigns the given order values by link id in a single
	// read-modify-write cycle and returns the whole collection. Ids not in
	// the map keep their stored order.
	UpdateOrders(ctx context.Context, orders map[string]int) ([]Link, error)
}
