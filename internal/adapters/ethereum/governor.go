package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/bnema/propcast/internal/domain"
	"github.com/bnema/propcast/internal/ports"
	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/sirupsen/logrus"
)

const (
	defaultLogBuffer          = 16
	defaultResubscribeBackoff = 10 * time.Second
)

var _ ports.EventSource = (*GovernorSource)(nil)

// GovernorSource reads ProposalCreated logs of a single governor contract.
type GovernorSource struct {
	Query     goethereum.LogFilterer
	Stream    goethereum.LogFilterer
	Address   common.Address
	Topic     common.Hash
	FromBlock *big.Int
	Logger    logrus.FieldLogger
	// ResubscribeBackoff caps the wait between failed resubscribe attempts.
	ResubscribeBackoff time.Duration
}

func NewGovernorSource(clients *Clients, address string, topic common.Hash, logger logrus.FieldLogger) (*GovernorSource, error) {
	if clients == nil || clients.Query == nil {
		return nil, errors.New("ethereum client is required")
	}
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid governance address %q", address)
	}
	if topic == (common.Hash{}) {
		topic = ProposalCreatedTopic
	}

	source := &GovernorSource{
		Query:   clients.Query,
		Address: common.HexToAddress(address),
		Topic:   topic,
		Logger:  logger,
	}
	if clients.Stream != nil {
		source.Stream = clients.Stream
	}

	return source, nil
}

func (s *GovernorSource) filter(from *big.Int) goethereum.FilterQuery {
	return goethereum.FilterQuery{
		FromBlock: from,
		Addresses: []common.Address{s.Address},
		Topics:    [][]common.Hash{{s.Topic}},
	}
}

func (s *GovernorSource) ListProposals(ctx context.Context) ([]domain.ProposalEvent, error) {
	from := s.FromBlock
	if from == nil {
		from = big.NewInt(0)
	}

	logs, err := s.Query.FilterLogs(ctx, s.filter(from))
	if err != nil {
		return nil, fmt.Errorf("filter proposal logs: %w", err)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].Index < logs[j].Index
	})

	events := make([]domain.ProposalEvent, 0, len(logs))
	for _, lg := range logs {
		if lg.Removed {
			continue
		}
		events = append(events, toProposalEvent(lg))
	}

	return events, nil
}

// Subscribe forwards live proposal logs into sink. A dropped upstream
// subscription is re-established with backoff; Err carries no transient drop
// and is closed on Unsubscribe.
func (s *GovernorSource) Subscribe(ctx context.Context, sink chan<- domain.ProposalEvent) (ports.Subscription, error) {
	if s.Stream == nil {
		return nil, errors.New("subscription client is not configured")
	}

	first, err := s.subscribeLogs(ctx, sink)
	if err != nil {
		return nil, fmt.Errorf("subscribe proposal logs: %w", err)
	}

	return event.ResubscribeErr(s.resubscribeBackoff(), func(ctx context.Context, lastErr error) (event.Subscription, error) {
		if first != nil {
			sub := first
			first = nil
			return sub, nil
		}

		s.logger().WithError(lastErr).Warn("proposal subscription dropped, resubscribing")
		sub, err := s.subscribeLogs(ctx, sink)
		if err != nil {
			s.logger().WithError(err).Warn("resubscribe to proposal logs failed")
			return nil, err
		}
		return sub, nil
	}), nil
}

func (s *GovernorSource) subscribeLogs(ctx context.Context, sink chan<- domain.ProposalEvent) (event.Subscription, error) {
	logs := make(chan types.Log, defaultLogBuffer)
	upstream, err := s.Stream.SubscribeFilterLogs(ctx, s.filter(nil), logs)
	if err != nil {
		return nil, err
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer upstream.Unsubscribe()

		for {
			select {
			case <-quit:
				return nil
			case err, ok := <-upstream.Err():
				if !ok || err == nil {
					return domain.ErrSubscriptionClosed
				}
				return err
			case lg := <-logs:
				if lg.Removed {
					s.logger().WithField("tx", lg.TxHash.Hex()).Warn("dropping removed proposal log")
					continue
				}
				select {
				case sink <- toProposalEvent(lg):
				case <-quit:
					return nil
				}
			}
		}
	}), nil
}

func (s *GovernorSource) resubscribeBackoff() time.Duration {
	if s.ResubscribeBackoff > 0 {
		return s.ResubscribeBackoff
	}
	return defaultResubscribeBackoff
}

func (s *GovernorSource) logger() logrus.FieldLogger {
	if s.Logger != nil {
		return s.Logger
	}
	return logrus.StandardLogger()
}

func toProposalEvent(lg types.Log) domain.ProposalEvent {
	return domain.ProposalEvent{
		Ref: domain.EventRef{
			BlockNumber: lg.BlockNumber,
			TxHash:      lg.TxHash.Hex(),
			LogIndex:    lg.Index,
		},
	}
}
