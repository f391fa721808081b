package profile

import "context"

type Repository interface {
	// Read returns the stored profile, or the default one if the backing
	// file is absent. The default is not persisted by a read.
	Read(ctx context.Context) (*Profile, error)

	// Update merges params over the current value and persists the result.
	Update(ctx context.Context, params UpdateParams) (*Profile, error)

	// Write overwrites the stored profile, used by bootstrap.
	Write(ctx context.Context, p *Profile) error
}
