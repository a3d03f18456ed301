package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHolders struct {
	contract string
	owners   []string
	err      error
}

func (s *stubHolders) Holders(_ context.Context, contract string) ([]string, error) {
	s.contract = contract
	return s.owners, s.err
}

type stubUsers map[string]string

func (s stubUsers) LookupUsername(_ context.Context, address string) (string, bool, error) {
	if address == "0xbroken" {
		return "", false, errors.New("lookup failed")
	}
	name, ok := s[address]
	return name, ok, nil
}

func TestNewResolverRequiresDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewResolver(nil, stubUsers{})
	assert.Error(t, err)

	_, err = NewResolver(&stubHolders{}, nil)
	assert.Error(t, err)
}

func TestResolveOwnersDelegatesToHolderIndex(t *testing.T) {
	t.Parallel()

	holders := &stubHolders{owners: []string{"0xa", "0xb"}}
	resolver, err := NewResolver(holders, stubUsers{})
	require.NoError(t, err)

	owners, err := resolver.ResolveOwners(context.Background(), "0xtoken")
	require.NoError(t, err)
	assert.Equal(t, []string{"0xa", "0xb"}, owners)
	assert.Equal(t, "0xtoken", holders.contract)
}

func TestResolveOwnersWrapsError(t *testing.T) {
	t.Parallel()

	resolver, err := NewResolver(&stubHolders{err: errors.New("rpc down")}, stubUsers{})
	require.NoError(t, err)

	_, err = resolver.ResolveOwners(context.Background(), "0xtoken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve owners of 0xtoken: rpc down")
}

func TestResolveUsername(t *testing.T) {
	t.Parallel()

	resolver, err := NewResolver(&stubHolders{}, stubUsers{"0xa": "alice", "0xblank": "  "})
	require.NoError(t, err)

	name, ok, err := resolver.ResolveUsername(context.Background(), "0xa")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	_, ok, err = resolver.ResolveUsername(context.Background(), "0xmissing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = resolver.ResolveUsername(context.Background(), "0xblank")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = resolver.ResolveUsername(context.Background(), "0xbroken")
	assert.Error(t, err)
}
