package domain

import "strings"

const (
	TagBatchSize     = 5
	TaggingReplyText = "tagging all members below"
)

type TagBatch []string

func (b TagBatch) Text() string {
	mentions := make([]string, 0, len(b))
	for _, username := range b {
		mentions = append(mentions, "@"+username)
	}

	return strings.Join(mentions, " ")
}

// PartitionTags splits usernames into consecutive batches of at most size
// entries, keeping enumeration order.
func PartitionTags(usernames []string, size int) []TagBatch {
	if size <= 0 {
		size = TagBatchSize
	}
	if len(usernames) == 0 {
		return nil
	}

	batches := make([]TagBatch, 0, (len(usernames)+size-1)/size)
	for start := 0; start < len(usernames); start += size {
		end := min(start+size, len(usernames))
		batch := make(TagBatch, end-start)
		copy(batch, usernames[start:end])
		batches = append(batches, batch)
	}

	return batches
}
