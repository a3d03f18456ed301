package domain

type PostID string
type AuthorID string

type Post struct {
	ID        PostID
	AuthorID  AuthorID
	Text      string
	ParentID  PostID
	EmbedURLs []string
}

type PostRequest struct {
	Text     string
	EmbedURL string
	ParentID PostID
}

type FeedPage struct {
	Posts      []Post
	NextCursor string
}

func (p FeedPage) HasNext() bool {
	return p.NextCursor != ""
}

func PostedURLs(posts []Post) map[string]struct{} {
	urls := make(map[string]struct{}, len(posts))
	for _, post := range posts {
		for _, embed := range post.EmbedURLs {
			if embed == "" {
				continue
			}
			urls[embed] = struct{}{}
		}
	}

	return urls
}
