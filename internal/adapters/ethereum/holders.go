package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const defaultLogChunk = 10_000

type headReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// HolderIndex derives current ERC-721 holders by replaying Transfer logs.
// With Head set, logs are read in block ranges of ChunkSize and a range the
// provider rejects is split in half until it is accepted.
type HolderIndex struct {
	Query     goethereum.LogFilterer
	Head      headReader
	FromBlock *big.Int
	ChunkSize uint64
}

func NewHolderIndex(clients *Clients) (*HolderIndex, error) {
	if clients == nil || clients.Query == nil {
		return nil, errors.New("ethereum client is required")
	}

	return &HolderIndex{Query: clients.Query, Head: clients.Query}, nil
}

// Holders returns the distinct current owners of contract, ordered by the
// first time each address received a token.
func (h *HolderIndex) Holders(ctx context.Context, contract string) ([]string, error) {
	if !common.IsHexAddress(contract) {
		return nil, fmt.Errorf("invalid token address %q", contract)
	}

	from := h.FromBlock
	if from == nil {
		from = big.NewInt(0)
	}

	query := goethereum.FilterQuery{
		FromBlock: from,
		Addresses: []common.Address{common.HexToAddress(contract)},
		Topics:    [][]common.Hash{{TransferTopic}},
	}
	if h.Head == nil {
		logs, err := h.Query.FilterLogs(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("filter transfer logs: %w", err)
		}
		return CurrentHolders(logs), nil
	}

	head, err := h.Head.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("read chain head: %w", err)
	}

	chunk := h.ChunkSize
	if chunk == 0 {
		chunk = defaultLogChunk
	}

	var logs []types.Log
	for start := from.Uint64(); start <= head; start += chunk {
		end := min(start+chunk-1, head)
		got, err := h.filterRange(ctx, query, start, end)
		if err != nil {
			return nil, fmt.Errorf("filter transfer logs in blocks %d-%d: %w", start, end, err)
		}
		logs = append(logs, got...)
	}

	return CurrentHolders(logs), nil
}

func (h *HolderIndex) filterRange(ctx context.Context, query goethereum.FilterQuery, start, end uint64) ([]types.Log, error) {
	query.FromBlock = new(big.Int).SetUint64(start)
	query.ToBlock = new(big.Int).SetUint64(end)

	logs, err := h.Query.FilterLogs(ctx, query)
	if err == nil || start == end || ctx.Err() != nil {
		return logs, err
	}

	mid := start + (end-start)/2
	left, err := h.filterRange(ctx, query, start, mid)
	if err != nil {
		return nil, err
	}
	right, err := h.filterRange(ctx, query, mid+1, end)
	if err != nil {
		return nil, err
	}

	return append(left, right...), nil
}

// CurrentHolders replays Transfer logs in the given order. Logs that are
// removed or lack an indexed tokenId (ERC-20 style transfers) are ignored.
func CurrentHolders(logs []types.Log) []string {
	owners := make(map[common.Hash]common.Address)
	seen := make(map[common.Address]struct{})
	var order []common.Address

	for _, lg := range logs {
		if lg.Removed || len(lg.Topics) != 4 || lg.Topics[0] != TransferTopic {
			continue
		}

		to := common.BytesToAddress(lg.Topics[2].Bytes())
		owners[lg.Topics[3]] = to

		if _, ok := seen[to]; !ok {
			seen[to] = struct{}{}
			order = append(order, to)
		}
	}

	current := make(map[common.Address]struct{}, len(owners))
	for _, owner := range owners {
		if owner == (common.Address{}) {
			continue
		}
		current[owner] = struct{}{}
	}

	holders := make([]string, 0, len(current))
	for _, addr := range order {
		if _, ok := current[addr]; ok {
			holders = append(holders, addr.Hex())
		}
	}

	return holders
}
