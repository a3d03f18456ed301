package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionTagsBatchCountAndOrder(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 6, 10, 11, 23} {
		t.Run(fmt.Sprintf("audience_%d", n), func(t *testing.T) {
			usernames := make([]string, 0, n)
			for i := 0; i < n; i++ {
				usernames = append(usernames, fmt.Sprintf("user%d", i))
			}

			batches := PartitionTags(usernames, TagBatchSize)

			require.Len(t, batches, (n+TagBatchSize-1)/TagBatchSize)
			var flattened []string
			for i, batch := range batches {
				if i < len(batches)-1 {
					assert.Len(t, batch, TagBatchSize)
				} else {
					assert.NotEmpty(t, batch)
					assert.LessOrEqual(t, len(batch), TagBatchSize)
				}
				flattened = append(flattened, batch...)
			}
			if n == 0 {
				assert.Empty(t, flattened)
				return
			}
			assert.Equal(t, usernames, flattened)
		})
	}
}

func TestPartitionTagsDoesNotAliasInput(t *testing.T) {
	usernames := []string{"a", "b", "c"}
	batches := PartitionTags(usernames, 2)

	batches[0][0] = "changed"
	assert.Equal(t, "a", usernames[0])
}

func TestPartitionTagsDefaultsNonPositiveSize(t *testing.T) {
	batches := PartitionTags([]string{"a", "b", "c", "d", "e", "f"}, 0)

	require.Len(t, batches, 2)
	assert.Len(t, batches[0], TagBatchSize)
}

func TestTagBatchText(t *testing.T) {
	assert.Equal(t, "@alice @bob", TagBatch{"alice", "bob"}.Text())
	assert.Equal(t, "", TagBatch{}.Text())
}
