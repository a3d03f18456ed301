package domain

type AnnouncementStep string

const (
	StepRoot  AnnouncementStep = "root"
	StepReply AnnouncementStep = "reply"
	StepBatch AnnouncementStep = "batch"
)

type BatchResult struct {
	Batch  TagBatch
	PostID PostID
	Err    error
}

func (r BatchResult) Posted() bool {
	return r.Err == nil && r.PostID != ""
}

// AnnouncementResult records how far a multi-step announcement got.
// Nothing is rolled back on failure; callers decide whether to retry.
type AnnouncementResult struct {
	Proposal   Proposal
	Tagging    bool
	RootID     PostID
	ReplyID    PostID
	Batches    []BatchResult
	FailedStep AnnouncementStep
	Err        error
}

func (r AnnouncementResult) RootPosted() bool {
	return r.RootID != ""
}

func (r AnnouncementResult) FailedBatches() []BatchResult {
	var failed []BatchResult
	for _, batch := range r.Batches {
		if !batch.Posted() {
			failed = append(failed, batch)
		}
	}

	return failed
}

func (r AnnouncementResult) Complete() bool {
	if r.Err != nil || !r.RootPosted() {
		return false
	}
	if !r.Tagging {
		return true
	}

	return r.ReplyID != "" && len(r.FailedBatches()) == 0
}
