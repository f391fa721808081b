package credentials

import "context"

type Repository interface {
	// Read returns the stored credential, or common.ErrorNotFound if the
	// file has not been materialized yet.
	Read(ctx context.Context) (*Credential, error)

	// Write replaces the stored credential.
	Write(ctx context.Context, c *Credential) error
}
