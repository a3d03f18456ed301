package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/propcast/internal/domain"
	"github.com/bnema/propcast/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnounceWithTaggingDisabledPostsRootOnly(t *testing.T) {
	sink := mocks.NewMockPostSink(t)
	identity := mocks.NewMockIdentityResolver(t)
	logger, _ := testLogger()
	cfg := testConfig()
	cfg.TagMode = domain.TagModeDisabled

	proposal := domain.Proposal{Number: 5, URL: testURL(5)}
	sink.EXPECT().CreatePost(mockAnyContext(), domain.PostRequest{
		Text:     "Purple proposal #5 is live",
		EmbedURL: testURL(5),
	}).Return(domain.PostID("root"), nil).Once()

	engine := NewEngine(&staticEvents{}, identity, sink, &fakeClock{}, logger, cfg)
	result := engine.Announce(context.Background(), proposal)

	assert.True(t, result.Complete())
	assert.False(t, result.Tagging)
	assert.Equal(t, domain.PostID("root"), result.RootID)
	assert.Empty(t, result.ReplyID)
	sink.AssertNumberOfCalls(t, "CreatePost", 1)
	identity.AssertNotCalled(t, "ResolveOwners", mockAnyContext(), mockAnyContext())
}

func TestAnnounceBuildsThreadWithSiblingBatches(t *testing.T) {
	sink := newFeedSink(testAuthor)
	logger, _ := testLogger()

	engine := NewEngine(&staticEvents{}, holders(12), sink, &fakeClock{}, logger, testConfig())
	result := engine.Announce(context.Background(), domain.Proposal{Number: 3, URL: testURL(3)})

	require.NoError(t, result.Err)
	assert.True(t, result.Complete())

	created := sink.Created()
	require.Len(t, created, 5)
	assert.Equal(t, domain.PostRequest{Text: "Purple proposal #3 is live", EmbedURL: testURL(3)}, created[0])
	assert.Equal(t, domain.PostRequest{Text: domain.TaggingReplyText, ParentID: result.RootID}, created[1])
	assert.Equal(t, "@member00 @member01 @member02 @member03 @member04", created[2].Text)
	assert.Equal(t, "@member05 @member06 @member07 @member08 @member09", created[3].Text)
	assert.Equal(t, "@member10 @member11", created[4].Text)
	for _, batch := range created[2:] {
		assert.Equal(t, result.ReplyID, batch.ParentID)
		assert.Empty(t, batch.EmbedURL)
	}

	require.Len(t, result.Batches, 3)
	assert.Equal(t, domain.TagBatch{"member10", "member11"}, result.Batches[2].Batch)
}

func TestAnnounceStopsWhenRootPostFails(t *testing.T) {
	sink := mocks.NewMockPostSink(t)
	identity := mocks.NewMockIdentityResolver(t)
	logger, _ := testLogger()
	postErr := errors.New("status 401")

	sink.EXPECT().CreatePost(mockAnyContext(), mockAnyContext()).Return(domain.PostID(""), postErr).Once()

	engine := NewEngine(&staticEvents{}, identity, sink, &fakeClock{}, logger, testConfig())
	result := engine.Announce(context.Background(), domain.Proposal{Number: 1, URL: testURL(1)})

	require.ErrorIs(t, result.Err, postErr)
	assert.Equal(t, domain.StepRoot, result.FailedStep)
	assert.False(t, result.RootPosted())
	assert.False(t, result.Complete())
}

func TestAnnounceLeavesRootWhenReplyFails(t *testing.T) {
	sink := mocks.NewMockPostSink(t)
	identity := mocks.NewMockIdentityResolver(t)
	logger, _ := testLogger()
	replyErr := domain.ErrRateLimited

	sink.EXPECT().CreatePost(mockAnyContext(), domain.PostRequest{Text: "Purple proposal #1 is live", EmbedURL: testURL(1)}).
		Return(domain.PostID("root"), nil).Once()
	sink.EXPECT().CreatePost(mockAnyContext(), domain.PostRequest{Text: domain.TaggingReplyText, ParentID: "root"}).
		Return(domain.PostID(""), replyErr).Once()

	engine := NewEngine(&staticEvents{}, identity, sink, &fakeClock{}, logger, testConfig())
	result := engine.Announce(context.Background(), domain.Proposal{Number: 1, URL: testURL(1)})

	require.ErrorIs(t, result.Err, domain.ErrRateLimited)
	assert.Equal(t, domain.StepReply, result.FailedStep)
	assert.True(t, result.RootPosted())
	assert.Empty(t, result.Batches)
}

func TestAnnounceRecordsFailedBatchAndContinues(t *testing.T) {
	sink := newFeedSink(testAuthor)
	batchErr := errors.New("status 500")
	sink.failPost = map[string]error{"@member00 @member01 @member02 @member03 @member04": batchErr}
	logger, _ := testLogger()

	engine := NewEngine(&staticEvents{}, holders(7), sink, &fakeClock{}, logger, testConfig())
	result := engine.Announce(context.Background(), domain.Proposal{Number: 2, URL: testURL(2)})

	require.ErrorIs(t, result.Err, batchErr)
	assert.Equal(t, domain.StepBatch, result.FailedStep)
	require.Len(t, result.Batches, 2)
	assert.False(t, result.Batches[0].Posted())
	assert.True(t, result.Batches[1].Posted())
	assert.Len(t, result.FailedBatches(), 1)
	assert.Len(t, sink.Created(), 4)
}

func TestAnnounceTreatsEmptyPostIDAsFailure(t *testing.T) {
	sink := mocks.NewMockPostSink(t)
	logger, _ := testLogger()

	sink.EXPECT().CreatePost(mockAnyContext(), mockAnyContext()).Return(domain.PostID(""), nil).Once()

	engine := NewEngine(&staticEvents{}, holders(0), sink, &fakeClock{}, logger, testConfig())
	result := engine.Announce(context.Background(), domain.Proposal{Number: 1, URL: testURL(1)})

	require.ErrorIs(t, result.Err, domain.ErrMissingPostID)
	assert.Equal(t, domain.StepRoot, result.FailedStep)
}

func TestAnnounceWithUnresolvableAudiencePostsReplyOnly(t *testing.T) {
	sink := newFeedSink(testAuthor)
	logger, _ := testLogger()
	identity := staticIdentity{ownersErr: errors.New("rpc down")}

	engine := NewEngine(&staticEvents{}, identity, sink, &fakeClock{}, logger, testConfig())
	result := engine.Announce(context.Background(), domain.Proposal{Number: 4, URL: testURL(4)})

	assert.True(t, result.Complete())
	assert.Empty(t, result.FailedStep)
	assert.NoError(t, result.Err)
	assert.Empty(t, result.Batches)
	assert.Len(t, sink.Created(), 2)
}
