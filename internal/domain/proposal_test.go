package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLBuilderBuildsCanonicalVoteURL(t *testing.T) {
	urls := URLBuilder{Base: "https://nouns.build/dao/ethereum/", TokenAddress: "0xAbC"}

	assert.Equal(t, "https://nouns.build/dao/ethereum/0xAbC/vote/7", urls.URL(7))
}

func TestURLBuilderValidate(t *testing.T) {
	require.NoError(t, URLBuilder{Base: DefaultURLBase, TokenAddress: "0x1"}.Validate())
	assert.Error(t, URLBuilder{Base: DefaultURLBase}.Validate())
	assert.Error(t, URLBuilder{TokenAddress: "0x1"}.Validate())
}

func TestNumberProposalsAssignsOneBasedCreationOrder(t *testing.T) {
	urls := URLBuilder{Base: DefaultURLBase, TokenAddress: "0xtoken"}
	events := []ProposalEvent{
		{Ref: EventRef{BlockNumber: 10, TxHash: "0xa", LogIndex: 1}},
		{Ref: EventRef{BlockNumber: 12, TxHash: "0xb", LogIndex: 0}},
	}

	proposals := NumberProposals(events, urls)

	require.Len(t, proposals, 2)
	assert.Equal(t, ProposalNumber(1), proposals[0].Number)
	assert.Equal(t, "https://nouns.build/dao/ethereum/0xtoken/vote/1", proposals[0].URL)
	assert.Equal(t, events[0].Ref, proposals[0].Ref)
	assert.Equal(t, ProposalNumber(2), proposals[1].Number)
	assert.Equal(t, "https://nouns.build/dao/ethereum/0xtoken/vote/2", proposals[1].URL)
}

func TestNumberProposalsEmpty(t *testing.T) {
	assert.Empty(t, NumberProposals(nil, URLBuilder{}))
}

func TestAnnouncementText(t *testing.T) {
	assert.Equal(t, "Purple proposal #2 is live", AnnouncementText("Purple", 2))
	assert.Equal(t, "Purple proposal #9 is live", AnnouncementText("  ", 9))
	assert.Equal(t, "Builder proposal #1 is live", AnnouncementText("Builder", 1))
}

func TestEventRefKey(t *testing.T) {
	ref := EventRef{BlockNumber: 3, TxHash: "0xabc", LogIndex: 4}

	assert.Equal(t, "0xabc:4", ref.Key())
	assert.False(t, ref.IsZero())
	assert.True(t, EventRef{}.IsZero())
}

func TestPostedURLsCollectsEveryEmbed(t *testing.T) {
	urls := PostedURLs([]Post{
		{ID: "a", EmbedURLs: []string{"url1", ""}},
		{ID: "b"},
		{ID: "c", EmbedURLs: []string{"url2", "url1"}},
	})

	assert.Equal(t, map[string]struct{}{"url1": {}, "url2": {}}, urls)
}
