package ports

import (
	"context"

	"github.com/bnema/propcast/internal/domain"
)

// EventSource yields proposal-creation events in on-chain order.
type EventSource interface {
	ListProposals(ctx context.Context) ([]domain.ProposalEvent, error)
	Subscribe(ctx context.Context, sink chan<- domain.ProposalEvent) (Subscription, error)
}

// Subscription delivers at most one error on Err, once the source has
// given up; the channel is closed after Unsubscribe.
type Subscription interface {
	Err() <-chan error
	Unsubscribe()
}
