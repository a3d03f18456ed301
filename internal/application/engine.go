package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/propcast/internal/domain"
	"github.com/bnema/propcast/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPostDelay   = 2 * time.Second
	DefaultEventBuffer = 64
)

type EngineState string

const (
	StateIdle       EngineState = "idle"
	StateCatchingUp EngineState = "catching_up"
	StateLive       EngineState = "live"
)

type EngineConfig struct {
	AuthorID      domain.AuthorID
	TokenContract string
	DAOName       string
	URLs          domain.URLBuilder
	TagMode       domain.TagMode
	TagBatchSize  int
	PostDelay     time.Duration
	MaxFeedPages  int
	EventBuffer   int
}

func (c EngineConfig) Validate() error {
	var errs []error
	if c.AuthorID == "" {
		errs = append(errs, errors.New("author id is required"))
	}
	if c.TokenContract == "" {
		errs = append(errs, errors.New("token contract is required"))
	}
	if err := c.URLs.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !c.TagMode.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", domain.ErrInvalidTagMode, string(c.TagMode)))
	}
	if c.PostDelay < 0 {
		errs = append(errs, errors.New("post delay must not be negative"))
	}

	return errors.Join(errs...)
}

// Engine reconciles on-chain proposals with the bot's feed. All posting
// happens on the goroutine that calls CatchUp or Run.
type Engine struct {
	events   ports.EventSource
	identity ports.IdentityResolver
	sink     ports.PostSink
	clock    ports.Clock
	logger   logrus.FieldLogger
	cfg      EngineConfig

	state         EngineState
	proposalCount domain.ProposalNumber
	observed      map[string]domain.ProposalNumber
	progress      func(Progress)
}

func NewEngine(events ports.EventSource, identity ports.IdentityResolver, sink ports.PostSink, clock ports.Clock, logger logrus.FieldLogger, cfg EngineConfig) *Engine {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if cfg.TagBatchSize <= 0 {
		cfg.TagBatchSize = domain.TagBatchSize
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = DefaultEventBuffer
	}
	if cfg.DAOName == "" {
		cfg.DAOName = domain.DefaultDAOName
	}

	return &Engine{
		events:   events,
		identity: identity,
		sink:     sink,
		clock:    clock,
		logger:   logger,
		cfg:      cfg,
		state:    StateIdle,
		observed: make(map[string]domain.ProposalNumber),
	}
}

func (e *Engine) State() EngineState {
	return e.state
}

func (e *Engine) ProposalCount() domain.ProposalNumber {
	return e.proposalCount
}

// Run performs the historical pass and then handles live events until ctx
// is cancelled or the subscription fails. The subscription is opened first
// so events emitted during the pass are queued rather than lost.
func (e *Engine) Run(ctx context.Context) error {
	events := make(chan domain.ProposalEvent, e.cfg.EventBuffer)
	sub, err := e.events.Subscribe(ctx, events)
	if err != nil {
		return fmt.Errorf("subscribe to proposal events: %w", err)
	}
	defer sub.Unsubscribe()

	report, err := e.CatchUp(ctx)
	if err != nil {
		return fmt.Errorf("historical reconciliation: %w", err)
	}
	e.logger.WithFields(logrus.Fields{
		"count":     e.proposalCount,
		"announced": len(report.Results),
		"failed":    len(report.Failed()),
	}).Info("fetched historical proposals")

	e.transition(StateLive)

	return e.consume(ctx, events, sub.Err())
}

func (e *Engine) transition(next EngineState) {
	if e.state == next {
		return
	}
	e.logger.WithFields(logrus.Fields{"from": e.state, "to": next}).Debug("engine state change")
	e.state = next
}

// observe advances the proposal counter for an event not seen before. It
// reports false when the event was already counted.
func (e *Engine) observe(ref domain.EventRef, fallbackKey string) (domain.ProposalNumber, bool) {
	key := fallbackKey
	if !ref.IsZero() {
		key = ref.Key()
	}
	if key != "" {
		if number, ok := e.observed[key]; ok {
			return number, false
		}
	}

	e.proposalCount++
	if key != "" {
		e.observed[key] = e.proposalCount
	}

	return e.proposalCount, true
}

func (e *Engine) proposal(number domain.ProposalNumber, ref domain.EventRef) domain.Proposal {
	return domain.Proposal{
		Number: number,
		URL:    e.cfg.URLs.URL(number),
		Ref:    ref,
	}
}

func historicalKey(index int) string {
	return "historical:" + strconv.Itoa(index)
}

func (e *Engine) pause(ctx context.Context) error {
	if e.cfg.PostDelay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.clock.After(e.cfg.PostDelay):
		return nil
	}
}
