package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultDAOName = "Purple"
	DefaultURLBase = "https://nouns.build/dao/ethereum"
)

type ProposalNumber uint64

// EventRef identifies the on-chain log a proposal was derived from.
type EventRef struct {
	BlockNumber uint64
	TxHash      string
	LogIndex    uint
}

func (r EventRef) IsZero() bool {
	return r.TxHash == "" && r.BlockNumber == 0 && r.LogIndex == 0
}

func (r EventRef) Key() string {
	return r.TxHash + ":" + strconv.FormatUint(uint64(r.LogIndex), 10)
}

type ProposalEvent struct {
	Ref EventRef
}

type Proposal struct {
	Number ProposalNumber
	URL    string
	Ref    EventRef
}

type URLBuilder struct {
	Base         string
	TokenAddress string
}

func (b URLBuilder) Validate() error {
	if strings.TrimSpace(b.Base) == "" {
		return fmt.Errorf("url base is required")
	}
	if strings.TrimSpace(b.TokenAddress) == "" {
		return fmt.Errorf("token address is required")
	}

	return nil
}

func (b URLBuilder) URL(number ProposalNumber) string {
	return strings.TrimRight(b.Base, "/") + "/" + b.TokenAddress + "/vote/" + strconv.FormatUint(uint64(number), 10)
}

// NumberProposals assigns 1-based numbers in creation order.
func NumberProposals(events []ProposalEvent, urls URLBuilder) []Proposal {
	proposals := make([]Proposal, 0, len(events))
	for i, event := range events {
		number := ProposalNumber(i + 1)
		proposals = append(proposals, Proposal{
			Number: number,
			URL:    urls.URL(number),
			Ref:    event.Ref,
		})
	}

	return proposals
}

func AnnouncementText(daoName string, number ProposalNumber) string {
	name := strings.TrimSpace(daoName)
	if name == "" {
		name = DefaultDAOName
	}

	return fmt.Sprintf("%s proposal #%d is live", name, number)
}
