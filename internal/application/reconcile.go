package application

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/bnema/propcast/internal/domain"
	"github.com/sirupsen/logrus"
)

type CatchUpReport struct {
	Proposals        int
	AlreadyAnnounced int
	Results          []domain.AnnouncementResult
}

func (r CatchUpReport) Failed() []domain.AnnouncementResult {
	var failed []domain.AnnouncementResult
	for _, result := range r.Results {
		if !result.Complete() {
			failed = append(failed, result)
		}
	}

	return failed
}

// Unannounced returns the proposals whose URL is not in posted, ordered by
// ascending proposal number.
func Unannounced(proposals []domain.Proposal, posted map[string]struct{}) []domain.Proposal {
	pending := make([]domain.Proposal, 0, len(proposals))
	for _, proposal := range proposals {
		if _, ok := posted[proposal.URL]; ok {
			continue
		}
		pending = append(pending, proposal)
	}

	slices.SortStableFunc(pending, func(a, b domain.Proposal) int {
		return cmp.Compare(a.Number, b.Number)
	})

	return pending
}

// CatchUp announces every historical proposal missing from the feed. Event
// listing errors abort the pass; a failed announcement does not.
func (e *Engine) CatchUp(ctx context.Context) (CatchUpReport, error) {
	e.transition(StateCatchingUp)

	events, err := e.events.ListProposals(ctx)
	if err != nil {
		return CatchUpReport{}, fmt.Errorf("list proposal events: %w", err)
	}

	proposals := make([]domain.Proposal, 0, len(events))
	for i, event := range events {
		number, _ := e.observe(event.Ref, historicalKey(i))
		proposals = append(proposals, e.proposal(number, event.Ref))
	}

	posted := e.postedURLs(ctx)
	if err := ctx.Err(); err != nil {
		return CatchUpReport{}, err
	}

	pending := Unannounced(proposals, posted)
	report := CatchUpReport{
		Proposals:        len(proposals),
		AlreadyAnnounced: len(proposals) - len(pending),
	}
	e.logger.WithFields(logrus.Fields{
		"proposals": len(proposals),
		"posts":     len(posted),
		"pending":   len(pending),
	}).Info("reconciled historical proposals")

	for _, proposal := range pending {
		report.Results = append(report.Results, e.Announce(ctx, proposal))

		if err := e.pause(ctx); err != nil {
			return report, err
		}
	}

	return report, nil
}

type Plan struct {
	Proposals []domain.Proposal
	Posted    map[string]struct{}
	Pending   []domain.Proposal
	TagMode   domain.TagMode
}

func (p Plan) Announced(proposal domain.Proposal) bool {
	_, ok := p.Posted[proposal.URL]
	return ok
}

// Plan computes what CatchUp would post without posting or touching the
// engine's proposal counter.
func (e *Engine) Plan(ctx context.Context) (Plan, error) {
	e.report(Progress{Phase: PhaseProposalEvents})
	events, err := e.events.ListProposals(ctx)
	if err != nil {
		return Plan{}, fmt.Errorf("list proposal events: %w", err)
	}

	proposals := domain.NumberProposals(events, e.cfg.URLs)
	posted := e.postedURLs(ctx)
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}

	return Plan{
		Proposals: proposals,
		Posted:    posted,
		Pending:   Unannounced(proposals, posted),
		TagMode:   e.cfg.TagMode,
	}, nil
}
