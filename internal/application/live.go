package application

import (
	"context"
	"fmt"

	"github.com/bnema/propcast/internal/domain"
	"github.com/sirupsen/logrus"
)

type LiveOutcome struct {
	Proposal      domain.Proposal
	Duplicate     bool
	AlreadyPosted bool
	Result        *domain.AnnouncementResult
}

// consume is the only reader of events once the engine is live. Events
// already queued when the subscription ends are handled before returning.
func (e *Engine) consume(ctx context.Context, events <-chan domain.ProposalEvent, errs <-chan error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			e.drain(ctx, events)
			if !ok || err == nil {
				if ctx.Err() != nil {
					return nil
				}
				return domain.ErrSubscriptionClosed
			}
			return fmt.Errorf("proposal subscription: %w", err)
		case event, ok := <-events:
			if !ok {
				return domain.ErrSubscriptionClosed
			}
			e.handleLiveEvent(ctx, event)
		}
	}
}

func (e *Engine) drain(ctx context.Context, events <-chan domain.ProposalEvent) {
	for ctx.Err() == nil {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			e.handleLiveEvent(ctx, event)
		default:
			return
		}
	}
}

func (e *Engine) handleLiveEvent(ctx context.Context, event domain.ProposalEvent) LiveOutcome {
	number, fresh := e.observe(event.Ref, "")
	proposal := e.proposal(number, event.Ref)
	outcome := LiveOutcome{Proposal: proposal}
	log := e.logger.WithFields(logrus.Fields{
		"proposal": proposal.Number,
		"url":      proposal.URL,
		"tx":       event.Ref.TxHash,
	})

	if !fresh {
		outcome.Duplicate = true
		log.Debug("ignoring already observed proposal event")
		return outcome
	}

	log.Info("new proposal created")
	if _, ok := e.postedURLs(ctx)[proposal.URL]; ok {
		outcome.AlreadyPosted = true
		log.Info("proposal already announced")
		return outcome
	}

	result := e.Announce(ctx, proposal)
	outcome.Result = &result

	return outcome
}
