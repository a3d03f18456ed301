package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// Audience resolves the token holders that map to usernames, in the
// resolver's enumeration order. Resolver failures shrink the audience
// instead of failing the caller.
func (e *Engine) Audience(ctx context.Context) []string {
	e.report(Progress{Phase: PhaseHolders})
	owners, err := e.identity.ResolveOwners(ctx, e.cfg.TokenContract)
	if err != nil {
		e.logger.WithError(err).WithField("contract", e.cfg.TokenContract).Warn("failed to resolve token holders, tagging nobody")
		return nil
	}

	usernames := make([]string, 0, len(owners))
	seen := make(map[string]struct{}, len(owners))
	for i, owner := range owners {
		e.report(Progress{Phase: PhaseUsernames, Done: i + 1, Total: len(owners)})
		username, ok, err := e.identity.ResolveUsername(ctx, owner)
		if err != nil {
			e.logger.WithError(err).WithField("address", owner).Debug("failed to resolve username")
			continue
		}
		username = strings.TrimPrefix(strings.TrimSpace(username), "@")
		if !ok || username == "" {
			continue
		}
		if _, dup := seen[username]; dup {
			continue
		}
		seen[username] = struct{}{}
		usernames = append(usernames, username)
	}

	e.logger.WithFields(logrus.Fields{
		"holders":   len(owners),
		"usernames": len(usernames),
	}).Debug("resolved audience")

	return usernames
}
