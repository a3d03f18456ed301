package application

import (
	"context"

	"github.com/bnema/propcast/internal/domain"
	"github.com/sirupsen/logrus"
)

// ReadFeed follows the author's feed cursor until it runs out. A failed page
// ends pagination and the posts gathered so far are returned; callers may
// therefore under-count what has already been posted.
func (e *Engine) ReadFeed(ctx context.Context, author domain.AuthorID) []domain.Post {
	var posts []domain.Post
	cursor := ""

	for page := 1; ; page++ {
		e.report(Progress{Phase: PhaseFeed, Done: page})
		result, err := e.sink.ListPostsByAuthor(ctx, author, cursor)
		if err != nil {
			e.logger.WithError(err).WithFields(logrus.Fields{
				"author": author,
				"page":   page,
				"posts":  len(posts),
			}).Warn("failed to fetch feed page, continuing with partial feed")
			return posts
		}

		posts = append(posts, result.Posts...)
		if !result.HasNext() {
			return posts
		}
		if e.cfg.MaxFeedPages > 0 && page >= e.cfg.MaxFeedPages {
			e.logger.WithFields(logrus.Fields{
				"author": author,
				"pages":  page,
			}).Warn("feed page limit reached, continuing with partial feed")
			return posts
		}

		cursor = result.NextCursor
	}
}

func (e *Engine) postedURLs(ctx context.Context) map[string]struct{} {
	return domain.PostedURLs(e.ReadFeed(ctx, e.cfg.AuthorID))
}
