package ports

import "context"

type IdentityResolver interface {
	// ResolveOwners returns distinct holder addresses in enumeration order.
	ResolveOwners(ctx context.Context, contract string) ([]string, error)
	ResolveUsername(ctx context.Context, address string) (string, bool, error)
}
