package ethereum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	ProposalCreatedEvent = "ProposalCreated"

	// ProposalCreatedSignature is the Nouns Builder governor event.
	ProposalCreatedSignature = "ProposalCreated(bytes32,address[],uint256[],bytes[],string,bytes32,(address,uint32,uint32,uint32,uint32,uint32,uint32,uint32,uint32,bool,bool,bool))"

	TransferSignature = "Transfer(address,address,uint256)"
)

var (
	ProposalCreatedTopic = crypto.Keccak256Hash([]byte(ProposalCreatedSignature))
	TransferTopic        = crypto.Keccak256Hash([]byte(TransferSignature))
)

// explorerEnvelope is the getabi response shape, where result holds the ABI
// as an encoded string.
type explorerEnvelope struct {
	Result string `json:"result"`
}

// LoadEventTopic reads an ABI file and returns the topic of the named event.
// Both a bare ABI array and a block explorer getabi response are accepted.
func LoadEventTopic(path string, event string) (common.Hash, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return common.Hash{}, fmt.Errorf("read abi file: %w", err)
	}

	return ParseEventTopic(data, event)
}

func ParseEventTopic(data []byte, event string) (common.Hash, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		return common.Hash{}, errors.New("abi is empty")
	}

	if raw[0] == '{' {
		var envelope explorerEnvelope
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return common.Hash{}, fmt.Errorf("decode abi envelope: %w", err)
		}
		if envelope.Result == "" {
			return common.Hash{}, errors.New("abi envelope has no result")
		}
		raw = []byte(envelope.Result)
	}

	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return common.Hash{}, fmt.Errorf("parse abi: %w", err)
	}

	ev, ok := parsed.Events[event]
	if !ok {
		return common.Hash{}, fmt.Errorf("abi has no %s event", event)
	}

	return ev.ID, nil
}
