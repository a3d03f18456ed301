package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/propcast/internal/domain"
	"github.com/bnema/propcast/internal/ports/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFeedPerformsOneRequestPerCursorPlusOne(t *testing.T) {
	for _, k := range []int{0, 1, 3, 6} {
		t.Run(fmt.Sprintf("cursors_%d", k), func(t *testing.T) {
			sink := mocks.NewMockPostSink(t)
			logger, _ := testLogger()

			var want []domain.Post
			cursor := ""
			for i := 0; i <= k; i++ {
				post := domain.Post{ID: domain.PostID(fmt.Sprintf("p%d", i)), EmbedURLs: []string{fmt.Sprintf("url%d", i)}}
				want = append(want, post)

				page := domain.FeedPage{Posts: []domain.Post{post}}
				if i < k {
					page.NextCursor = fmt.Sprintf("cursor-%d", i+1)
				}
				sink.EXPECT().ListPostsByAuthor(mockAnyContext(), testAuthor, cursor).Return(page, nil).Once()
				cursor = page.NextCursor
			}

			engine := NewEngine(&staticEvents{}, holders(0), sink, &fakeClock{}, logger, testConfig())
			got := engine.ReadFeed(context.Background(), testAuthor)

			assert.Equal(t, want, got)
			sink.AssertNumberOfCalls(t, "ListPostsByAuthor", k+1)
		})
	}
}

func TestReadFeedReturnsPartialResultsOnFailure(t *testing.T) {
	sink := mocks.NewMockPostSink(t)
	logger, hook := testLogger()

	sink.EXPECT().ListPostsByAuthor(mockAnyContext(), testAuthor, "").Return(domain.FeedPage{
		Posts:      []domain.Post{{ID: "a", EmbedURLs: []string{"url1"}}},
		NextCursor: "next",
	}, nil).Once()
	sink.EXPECT().ListPostsByAuthor(mockAnyContext(), testAuthor, "next").Return(domain.FeedPage{}, errors.New("status 503")).Once()

	engine := NewEngine(&staticEvents{}, holders(0), sink, &fakeClock{}, logger, testConfig())
	got := engine.ReadFeed(context.Background(), testAuthor)

	require.Len(t, got, 1)
	assert.Equal(t, domain.PostID("a"), got[0].ID)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, 2, hook.LastEntry().Data["page"])
}

func TestReadFeedFirstPageFailureYieldsEmptyFeed(t *testing.T) {
	sink := mocks.NewMockPostSink(t)
	logger, _ := testLogger()

	sink.EXPECT().ListPostsByAuthor(mockAnyContext(), testAuthor, "").Return(domain.FeedPage{}, errors.New("dial tcp: timeout")).Once()

	engine := NewEngine(&staticEvents{}, holders(0), sink, &fakeClock{}, logger, testConfig())

	assert.Empty(t, engine.ReadFeed(context.Background(), testAuthor))
}

func TestReadFeedHonoursPageLimit(t *testing.T) {
	sink := newFeedSink(testAuthor, "u1", "u2", "u3", "u4", "u5")
	logger, _ := testLogger()
	cfg := testConfig()
	cfg.MaxFeedPages = 2

	engine := NewEngine(&staticEvents{}, holders(0), sink, &fakeClock{}, logger, cfg)
	got := engine.ReadFeed(context.Background(), testAuthor)

	assert.Len(t, got, 4)
	assert.Equal(t, 2, sink.listCalls)
}
