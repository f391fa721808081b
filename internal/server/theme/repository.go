package theme

import "context"

type Repository interface {
	// Read returns the stored theme, or the default one if the backing file
	// is absent. The default is not persisted by a read.
	Read(ctx context.Context) (*Theme, error)

	// Write replaces the stored theme verbatim.
	Write(ctx context.Context, t *Theme) error
}
