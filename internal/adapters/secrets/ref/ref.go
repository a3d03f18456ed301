package ref

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	filestore "github.com/bnema/propcast/internal/adapters/secrets/file"
	"github.com/bnema/propcast/internal/ports"
)

const (
	SchemePass   = "pass"
	SchemeFile   = "file"
	SchemeSecret = "secret"
)

// Resolver turns configuration values of the form scheme:target into
// secrets. Values without a known scheme are returned unchanged.
//
//	pass:<entry>    entry in the pass store
//	file:<path>     contents of a file, ~ expands to the home directory
//	secret:<key>    key in the managed store written by "propcast secret set"
type Resolver struct {
	Pass    ports.SecretStore
	Managed ports.SecretStore
}

func Parse(value string) (scheme string, target string, ok bool) {
	scheme, target, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return "", "", false
	}

	switch scheme {
	case SchemePass, SchemeFile, SchemeSecret:
		return scheme, strings.TrimSpace(target), true
	default:
		return "", "", false
	}
}

func IsRef(value string) bool {
	_, _, ok := Parse(value)
	return ok
}

func (r Resolver) Resolve(ctx context.Context, value string) (string, error) {
	scheme, target, ok := Parse(value)
	if !ok {
		return value, nil
	}
	if target == "" {
		return "", fmt.Errorf("secret reference %q has no target", value)
	}

	switch scheme {
	case SchemePass:
		if r.Pass == nil {
			return "", errors.New("pass store is not configured")
		}
		return r.Pass.Get(ctx, target)
	case SchemeSecret:
		if r.Managed == nil {
			return "", errors.New("managed secret store is not configured")
		}
		return r.Managed.Get(ctx, target)
	default:
		path, err := expandHome(target)
		if err != nil {
			return "", err
		}
		return filestore.ReadSecretFile(path)
	}
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
