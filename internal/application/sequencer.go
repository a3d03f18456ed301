package application

import (
	"context"
	"fmt"

	"github.com/bnema/propcast/internal/domain"
	"github.com/sirupsen/logrus"
)

// Announce posts the root cast for a proposal and, when tagging is enabled,
// the tagging reply and one sibling reply per tag batch. A failed root or
// tagging reply stops the sequence; failed batches are recorded and the
// remaining batches are still posted. Nothing already posted is undone.
func (e *Engine) Announce(ctx context.Context, proposal domain.Proposal) domain.AnnouncementResult {
	result := domain.AnnouncementResult{
		Proposal: proposal,
		Tagging:  e.cfg.TagMode.Enabled(),
	}
	log := e.logger.WithFields(logrus.Fields{
		"proposal": proposal.Number,
		"url":      proposal.URL,
	})

	text := domain.AnnouncementText(e.cfg.DAOName, proposal.Number)
	rootID, err := e.createPost(ctx, domain.PostRequest{Text: text, EmbedURL: proposal.URL})
	if err != nil {
		result.FailedStep = domain.StepRoot
		result.Err = fmt.Errorf("create announcement post: %w", err)
		log.WithError(err).Error("failed to post announcement")
		return result
	}
	result.RootID = rootID
	log.WithField("post_id", rootID).Infof("posted announcement %q", text)

	if !result.Tagging {
		return result
	}

	replyID, err := e.createPost(ctx, domain.PostRequest{Text: domain.TaggingReplyText, ParentID: rootID})
	if err != nil {
		result.FailedStep = domain.StepReply
		result.Err = fmt.Errorf("create tagging reply: %w", err)
		log.WithError(err).Error("failed to post tagging reply")
		return result
	}
	result.ReplyID = replyID

	audience := e.Audience(ctx)
	batches := domain.PartitionTags(audience, e.cfg.TagBatchSize)
	for i, batch := range batches {
		postID, err := e.createPost(ctx, domain.PostRequest{Text: batch.Text(), ParentID: replyID})
		batchResult := domain.BatchResult{Batch: batch, PostID: postID}
		if err != nil {
			batchResult.Err = fmt.Errorf("create tag batch %d: %w", i, err)
			if result.Err == nil {
				result.FailedStep = domain.StepBatch
				result.Err = batchResult.Err
			}
			log.WithError(err).WithField("batch", i).Warn("failed to post tag batch")
		}
		result.Batches = append(result.Batches, batchResult)
	}

	log.WithFields(logrus.Fields{
		"audience": len(audience),
		"batches":  len(batches),
		"failed":   len(result.FailedBatches()),
	}).Info("tagged audience")

	return result
}

func (e *Engine) createPost(ctx context.Context, req domain.PostRequest) (domain.PostID, error) {
	postID, err := e.sink.CreatePost(ctx, req)
	if err != nil {
		return "", err
	}
	if postID == "" {
		return "", domain.ErrMissingPostID
	}

	return postID, nil
}
