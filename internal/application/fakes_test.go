package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/propcast/internal/domain"
	"github.com/bnema/propcast/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
)

const (
	testAuthor = domain.AuthorID("4242")
	testToken  = "0xToken"
)

func testConfig() EngineConfig {
	return EngineConfig{
		AuthorID:      testAuthor,
		TokenContract: testToken,
		DAOName:       "Purple",
		URLs:          domain.URLBuilder{Base: domain.DefaultURLBase, TokenAddress: testToken},
		TagMode:       domain.TagModeEnabled,
		PostDelay:     DefaultPostDelay,
	}
}

func testURL(n domain.ProposalNumber) string {
	return domain.URLBuilder{Base: domain.DefaultURLBase, TokenAddress: testToken}.URL(n)
}

func testLogger() (logrus.FieldLogger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func proposalEvent(i int) domain.ProposalEvent {
	return domain.ProposalEvent{Ref: domain.EventRef{
		BlockNumber: uint64(100 + i),
		TxHash:      fmt.Sprintf("0x%04x", i),
		LogIndex:    uint(i % 3),
	}}
}

func mockAnyContext() interface{} {
	return mock.Anything
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	waited []time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waited = append(c.waited, d)
	c.now = c.now.Add(d)

	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func (c *fakeClock) Waits() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.waited...)
}

// feedSink is an in-memory post sink whose feed reflects created posts.
type feedSink struct {
	mu        sync.Mutex
	author    domain.AuthorID
	pageSize  int
	posts     []domain.Post
	created   []domain.PostRequest
	listCalls int
	failPost  map[string]error
}

func newFeedSink(author domain.AuthorID, embedded ...string) *feedSink {
	s := &feedSink{author: author, pageSize: 2}
	for _, url := range embedded {
		s.posts = append(s.posts, domain.Post{
			ID:        domain.PostID(fmt.Sprintf("seed-%d", len(s.posts))),
			AuthorID:  author,
			EmbedURLs: []string{url},
		})
	}
	return s
}

func (s *feedSink) CreatePost(_ context.Context, req domain.PostRequest) (domain.PostID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.created = append(s.created, req)
	if err, ok := s.failPost[req.Text]; ok {
		return "", err
	}

	id := domain.PostID(fmt.Sprintf("post-%d", len(s.created)))
	post := domain.Post{ID: id, AuthorID: s.author, Text: req.Text, ParentID: req.ParentID}
	if req.EmbedURL != "" {
		post.EmbedURLs = []string{req.EmbedURL}
	}
	// newest first, like a timeline
	s.posts = append([]domain.Post{post}, s.posts...)

	return id, nil
}

func (s *feedSink) ListPostsByAuthor(_ context.Context, author domain.AuthorID, cursor string) (domain.FeedPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listCalls++
	var owned []domain.Post
	for _, post := range s.posts {
		if post.AuthorID == author {
			owned = append(owned, post)
		}
	}

	start := 0
	if cursor != "" {
		if _, err := fmt.Sscanf(cursor, "offset-%d", &start); err != nil {
			return domain.FeedPage{}, err
		}
	}
	end := min(start+s.pageSize, len(owned))
	page := domain.FeedPage{Posts: owned[start:end]}
	if end < len(owned) {
		page.NextCursor = fmt.Sprintf("offset-%d", end)
	}

	return page, nil
}

func (s *feedSink) Created() []domain.PostRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.PostRequest(nil), s.created...)
}

func (s *feedSink) RootPosts() []domain.PostRequest {
	var roots []domain.PostRequest
	for _, req := range s.Created() {
		if req.ParentID == "" {
			roots = append(roots, req)
		}
	}
	return roots
}

type staticEvents struct {
	events  []domain.ProposalEvent
	err     error
	live    []domain.ProposalEvent
	sub     *fakeSubscription
	onCatch func()
}

func (s *staticEvents) ListProposals(context.Context) ([]domain.ProposalEvent, error) {
	if s.onCatch != nil {
		s.onCatch()
	}
	return append([]domain.ProposalEvent(nil), s.events...), s.err
}

func (s *staticEvents) Subscribe(_ context.Context, sink chan<- domain.ProposalEvent) (ports.Subscription, error) {
	for _, event := range s.live {
		sink <- event
	}
	if s.sub == nil {
		s.sub = newFakeSubscription()
	}
	return s.sub, nil
}

type fakeSubscription struct {
	once sync.Once
	errs chan error
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{errs: make(chan error, 1)}
}

func (s *fakeSubscription) Err() <-chan error {
	return s.errs
}

func (s *fakeSubscription) Unsubscribe() {
	s.once.Do(func() { close(s.errs) })
}

type staticIdentity struct {
	owners    []string
	ownersErr error
	usernames map[string]string
	failing   map[string]error
}

func (s staticIdentity) ResolveOwners(context.Context, string) ([]string, error) {
	return s.owners, s.ownersErr
}

func (s staticIdentity) ResolveUsername(_ context.Context, address string) (string, bool, error) {
	if err, ok := s.failing[address]; ok {
		return "", false, err
	}
	username, ok := s.usernames[address]
	return username, ok, nil
}

func holders(n int) staticIdentity {
	identity := staticIdentity{usernames: map[string]string{}}
	for i := 0; i < n; i++ {
		address := fmt.Sprintf("0xholder%02d", i)
		identity.owners = append(identity.owners, address)
		identity.usernames[address] = fmt.Sprintf("member%02d", i)
	}
	return identity
}
