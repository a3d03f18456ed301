package ports

import (
	"context"

	"github.com/bnema/propcast/internal/domain"
)

type PostSink interface {
	CreatePost(ctx context.Context, req domain.PostRequest) (domain.PostID, error)
	ListPostsByAuthor(ctx context.Context, author domain.AuthorID, cursor string) (domain.FeedPage, error)
}
