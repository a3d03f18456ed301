package neynar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type verificationResponse struct {
	Result struct {
		User *struct {
			FID      int64  `json:"fid"`
			Username string `json:"username"`
		} `json:"user"`
	} `json:"result"`
}

// LookupUsername returns the username of the Farcaster account that has
// verified address. A 404 or an empty result means no such account.
func (c *Client) LookupUsername(ctx context.Context, address string) (string, bool, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", false, errors.New("address is required")
	}

	query := url.Values{}
	query.Set("address", address)
	endpoint, err := buildAPIURL(c.API.BaseURL, c.API.UserByVerificationPath, query)
	if err != nil {
		return "", false, err
	}

	var payload verificationResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &payload); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("lookup user by verification %s: %w", address, err)
	}

	if payload.Result.User == nil || payload.Result.User.Username == "" {
		return "", false, nil
	}

	return payload.Result.User.Username, true, nil
}
