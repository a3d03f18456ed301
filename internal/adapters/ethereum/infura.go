package ethereum

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"
)

// infuraNetworks maps ethers-style network names onto Infura hostnames.
var infuraNetworks = map[string]string{
	"homestead": "mainnet",
	"mainnet":   "mainnet",
	"goerli":    "goerli",
	"sepolia":   "sepolia",
	"holesky":   "holesky",
	"base":      "base-mainnet",
	"optimism":  "optimism-mainnet",
	"zora":      "zora-mainnet",
}

func infuraHost(chain string) (string, error) {
	chain = strings.ToLower(strings.TrimSpace(chain))
	if chain == "" {
		return "", errors.New("chain is required")
	}
	if host, ok := infuraNetworks[chain]; ok {
		return host, nil
	}
	if strings.Contains(chain, "-") {
		return chain, nil
	}

	return "", fmt.Errorf("unsupported chain %q", chain)
}

func InfuraHTTPURL(chain string, projectID string) (string, error) {
	host, err := infuraHost(chain)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(projectID) == "" {
		return "", errors.New("infura project id is required")
	}

	return fmt.Sprintf("https://%s.infura.io/v3/%s", host, projectID), nil
}

func InfuraWebSocketURL(chain string, projectID string) (string, error) {
	host, err := infuraHost(chain)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(projectID) == "" {
		return "", errors.New("infura project id is required")
	}

	return fmt.Sprintf("wss://%s.infura.io/ws/v3/%s", host, projectID), nil
}

// Clients holds the query connection used for log filtering and the
// websocket connection used for subscriptions.
type Clients struct {
	Query  *ethclient.Client
	Stream *ethclient.Client
}

func DialInfura(ctx context.Context, chain string, projectID string) (*Clients, error) {
	httpURL, err := InfuraHTTPURL(chain, projectID)
	if err != nil {
		return nil, err
	}
	wsURL, err := InfuraWebSocketURL(chain, projectID)
	if err != nil {
		return nil, err
	}

	query, err := ethclient.DialContext(ctx, httpURL)
	if err != nil {
		return nil, fmt.Errorf("dial infura http: %w", err)
	}
	stream, err := ethclient.DialContext(ctx, wsURL)
	if err != nil {
		query.Close()
		return nil, fmt.Errorf("dial infura websocket: %w", err)
	}

	return &Clients{Query: query, Stream: stream}, nil
}

// DialQuery opens only the http connection, for commands that never subscribe.
func DialQuery(ctx context.Context, chain string, projectID string) (*Clients, error) {
	httpURL, err := InfuraHTTPURL(chain, projectID)
	if err != nil {
		return nil, err
	}

	query, err := ethclient.DialContext(ctx, httpURL)
	if err != nil {
		return nil, fmt.Errorf("dial infura http: %w", err)
	}

	return &Clients{Query: query}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Query != nil {
		c.Query.Close()
	}
	if c.Stream != nil {
		c.Stream.Close()
	}
}
