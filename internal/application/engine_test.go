package application

import (
	"testing"

	"github.com/bnema/propcast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineConfigValidate(t *testing.T) {
	require.NoError(t, testConfig().Validate())

	cfg := testConfig()
	cfg.AuthorID = ""
	cfg.TokenContract = ""
	cfg.TagMode = domain.TagMode("sometimes")
	cfg.PostDelay = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "author id is required")
	assert.Contains(t, err.Error(), "token contract is required")
	assert.Contains(t, err.Error(), "post delay must not be negative")
	assert.ErrorIs(t, err, domain.ErrInvalidTagMode)
}

func TestNewEngineAppliesDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.DAOName = ""
	cfg.TagBatchSize = 0

	engine := NewEngine(&staticEvents{}, holders(0), newFeedSink(testAuthor), nil, nil, cfg)

	assert.Equal(t, StateIdle, engine.State())
	assert.Equal(t, domain.ProposalNumber(0), engine.ProposalCount())
	assert.Equal(t, domain.DefaultDAOName, engine.cfg.DAOName)
	assert.Equal(t, domain.TagBatchSize, engine.cfg.TagBatchSize)
	assert.Equal(t, DefaultEventBuffer, engine.cfg.EventBuffer)
	assert.NotNil(t, engine.clock)
	assert.NotNil(t, engine.logger)
}

func TestObserveCountsEachEventOnce(t *testing.T) {
	engine := NewEngine(&staticEvents{}, holders(0), newFeedSink(testAuthor), &fakeClock{}, nil, testConfig())

	first, fresh := engine.observe(proposalEvent(1).Ref, "")
	assert.True(t, fresh)
	assert.Equal(t, domain.ProposalNumber(1), first)

	again, fresh := engine.observe(proposalEvent(1).Ref, "")
	assert.False(t, fresh)
	assert.Equal(t, first, again)

	// Events without an identity cannot be deduplicated.
	anon, fresh := engine.observe(domain.EventRef{}, "")
	assert.True(t, fresh)
	assert.Equal(t, domain.ProposalNumber(2), anon)
	anon, fresh = engine.observe(domain.EventRef{}, "")
	assert.True(t, fresh)
	assert.Equal(t, domain.ProposalNumber(3), anon)
}
