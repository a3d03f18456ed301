package neynar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/propcast/internal/domain"
	"github.com/bnema/propcast/internal/ports"
	"github.com/google/uuid"
)

const (
	defaultFeedLimit = 100
	idemLength       = 16
)

var _ ports.PostSink = (*Client)(nil)

type embed struct {
	URL string `json:"url,omitempty"`
}

type castRequest struct {
	SignerUUID string  `json:"signer_uuid"`
	Text       string  `json:"text"`
	Embeds     []embed `json:"embeds,omitempty"`
	Parent     string  `json:"parent,omitempty"`
	Idem       string  `json:"idem,omitempty"`
}

type castAuthor struct {
	FID      int64  `json:"fid"`
	Username string `json:"username"`
}

type cast struct {
	Hash       string     `json:"hash"`
	ParentHash *string    `json:"parent_hash"`
	Author     castAuthor `json:"author"`
	Text       string     `json:"text"`
	Embeds     []embed    `json:"embeds"`
}

type castResponse struct {
	Success bool `json:"success"`
	Cast    cast `json:"cast"`
}

type feedResponse struct {
	Casts []cast `json:"casts"`
	Next  struct {
		Cursor *string `json:"cursor"`
	} `json:"next"`
}

func (c *Client) CreatePost(ctx context.Context, req domain.PostRequest) (domain.PostID, error) {
	if c.SignerUUID == "" {
		return "", errors.New("signer uuid is required")
	}
	if strings.TrimSpace(req.Text) == "" {
		return "", errors.New("cast text is required")
	}

	endpoint, err := buildAPIURL(c.API.BaseURL, c.API.CastPath, nil)
	if err != nil {
		return "", err
	}

	body := castRequest{
		SignerUUID: c.SignerUUID,
		Text:       req.Text,
		Parent:     string(req.ParentID),
		Idem:       idempotencyKey(c.SignerUUID, req),
	}
	if req.EmbedURL != "" {
		body.Embeds = []embed{{URL: req.EmbedURL}}
	}

	var payload castResponse
	if err := c.do(ctx, http.MethodPost, endpoint, body, &payload); err != nil {
		return "", fmt.Errorf("create cast: %w", err)
	}
	if payload.Cast.Hash == "" {
		return "", fmt.Errorf("create cast: %w", domain.ErrMissingPostID)
	}

	return domain.PostID(payload.Cast.Hash), nil
}

func (c *Client) ListPostsByAuthor(ctx context.Context, author domain.AuthorID, cursor string) (domain.FeedPage, error) {
	if author == "" {
		return domain.FeedPage{}, errors.New("author fid is required")
	}

	limit := c.FeedLimit
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	query := url.Values{}
	query.Set("feed_type", "filter")
	query.Set("filter_type", "fids")
	query.Set("fid", string(author))
	query.Set("fids", string(author))
	query.Set("with_recasts", "false")
	query.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	endpoint, err := buildAPIURL(c.API.BaseURL, c.API.FeedPath, query)
	if err != nil {
		return domain.FeedPage{}, err
	}

	var payload feedResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		return domain.FeedPage{}, fmt.Errorf("fetch feed: %w", err)
	}

	page := domain.FeedPage{Posts: make([]domain.Post, 0, len(payload.Casts))}
	for _, item := range payload.Casts {
		page.Posts = append(page.Posts, toPost(item))
	}
	if payload.Next.Cursor != nil {
		page.NextCursor = *payload.Next.Cursor
	}

	return page, nil
}

func toPost(item cast) domain.Post {
	post := domain.Post{
		ID:       domain.PostID(item.Hash),
		AuthorID: domain.AuthorID(strconv.FormatInt(item.Author.FID, 10)),
		Text:     item.Text,
	}
	if item.ParentHash != nil {
		post.ParentID = domain.PostID(*item.ParentHash)
	}
	for _, e := range item.Embeds {
		if e.URL == "" {
			continue
		}
		post.EmbedURLs = append(post.EmbedURLs, e.URL)
	}

	return post
}

// idempotencyKey derives the upstream "idem" field; identical requests from the
// same signer share a key.
func idempotencyKey(signer string, req domain.PostRequest) string {
	name := strings.Join([]string{signer, string(req.ParentID), req.EmbedURL, req.Text}, "\x00")
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(name))
	return strings.ReplaceAll(id.String(), "-", "")[:idemLength]
}
