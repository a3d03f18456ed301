package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/propcast/internal/ports"
)

type HolderLister interface {
	Holders(ctx context.Context, contract string) ([]string, error)
}

type UsernameLookup interface {
	LookupUsername(ctx context.Context, address string) (string, bool, error)
}

var _ ports.IdentityResolver = (*Resolver)(nil)

// Resolver joins the on-chain holder index with the Farcaster verification
// lookup.
type Resolver struct {
	holders HolderLister
	users   UsernameLookup
}

func NewResolver(holders HolderLister, users UsernameLookup) (*Resolver, error) {
	if holders == nil {
		return nil, errors.New("holder lister is required")
	}
	if users == nil {
		return nil, errors.New("username lookup is required")
	}

	return &Resolver{holders: holders, users: users}, nil
}

func (r *Resolver) ResolveOwners(ctx context.Context, contract string) ([]string, error) {
	owners, err := r.holders.Holders(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("resolve owners of %s: %w", contract, err)
	}

	return owners, nil
}

func (r *Resolver) ResolveUsername(ctx context.Context, address string) (string, bool, error) {
	username, ok, err := r.users.LookupUsername(ctx, address)
	if err != nil {
		return "", false, err
	}
	username = strings.TrimSpace(username)
	if !ok || username == "" {
		return "", false, nil
	}

	return username, true, nil
}
