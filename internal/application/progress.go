package application

import "fmt"

type ProgressPhase string

const (
	PhaseProposalEvents ProgressPhase = "Reading proposal events"
	PhaseFeed           ProgressPhase = "Reading bot feed"
	PhaseHolders        ProgressPhase = "Resolving token holders"
	PhaseUsernames      ProgressPhase = "Resolving usernames"
)

// Progress reports how far a read-only query has got. Total is zero when
// the amount of work is not known up front.
type Progress struct {
	Phase ProgressPhase
	Done  int
	Total int
}

func (p Progress) Label() string {
	switch {
	case p.Total > 0:
		return fmt.Sprintf("%s (%d/%d)...", p.Phase, p.Done, p.Total)
	case p.Done > 0:
		return fmt.Sprintf("%s (page %d)...", p.Phase, p.Done)
	default:
		return string(p.Phase) + "..."
	}
}

// OnProgress registers fn to receive progress of Plan, ReadFeed and
// Audience. fn runs on the calling goroutine.
func (e *Engine) OnProgress(fn func(Progress)) {
	e.progress = fn
}

func (e *Engine) report(p Progress) {
	if e.progress != nil {
		e.progress(p)
	}
}
