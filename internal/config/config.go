package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/propcast/internal/domain"
)

const (
	KeyChain           = "chain"
	KeyInfuraProjectID = "infura.project_id"
	KeyNeynarAPIKey    = "neynar.api_key"
	KeyNeynarSigner    = "neynar.signer_uuid"
	KeyNeynarBaseURL   = "neynar.base_url"
	KeyGovernance      = "governance.address"
	KeyGovernanceABI   = "governance.abi_path"
	KeyTokenAddress    = "token.address"
	KeyBotFID          = "bot.fid"
	KeyDAOName         = "announce.dao_name"
	KeyURLBase         = "announce.url_base"
	KeyPostDelay       = "announce.post_delay"
	KeyMaxFeedPages    = "announce.max_feed_pages"
	KeyTagging         = "tagging"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"

	DefaultChain     = "goerli"
	DefaultPostDelay = 2 * time.Second
)

var ErrMissingConfig = errors.New("missing required configuration")

// envNames lists the environment variables bound to each key, in lookup
// order. The first names match the variables the bot has always read.
var envNames = map[string][]string{
	KeyChain:           {"CHAIN"},
	KeyInfuraProjectID: {"INFURA_PROJ_ID", "INFURA_PROJECT_ID"},
	KeyNeynarAPIKey:    {"NEYNAR_KEY", "NEYNAR_API_KEY"},
	KeyNeynarSigner:    {"NEYNAR_SIGNER", "NEYNAR_SIGNER_UUID"},
	KeyNeynarBaseURL:   {"NEYNAR_BASE_URL"},
	KeyGovernance:      {"GOVERNANCE_CONTRACT_ADDRESS"},
	KeyGovernanceABI:   {"GOVERNANCE_ABI_PATH"},
	KeyTokenAddress:    {"NFT_CONTRACT_ADDRESS"},
	KeyBotFID:          {"BOT_FID"},
	KeyDAOName:         {"DAO_NAME"},
	KeyURLBase:         {"ANNOUNCE_URL_BASE"},
	KeyPostDelay:       {"POST_DELAY"},
	KeyMaxFeedPages:    {"MAX_FEED_PAGES"},
	KeyTagging:         {"TAGGING"},
	KeyLogLevel:        {"LOG_LEVEL"},
	KeyLogFormat:       {"LOG_FORMAT"},
}

// legacyNoTagEnv is the inverted boolean switch older deployments use.
const legacyNoTagEnv = "DEV_MODE_NO_TAG"

var requiredKeys = []string{
	KeyChain,
	KeyInfuraProjectID,
	KeyNeynarAPIKey,
	KeyNeynarSigner,
	KeyGovernance,
	KeyTokenAddress,
	KeyBotFID,
}

type Config struct {
	Chain           string
	InfuraProjectID string
	Neynar          NeynarConfig
	Governance      GovernanceConfig
	TokenAddress    string
	BotFID          string
	Announce        AnnounceConfig
	Tagging         domain.TagMode
	Log             LogConfig
}

type NeynarConfig struct {
	APIKey     string
	SignerUUID string
	BaseURL    string
}

type GovernanceConfig struct {
	Address string
	ABIPath string
}

type AnnounceConfig struct {
	DAOName      string
	URLBase      string
	PostDelay    time.Duration
	MaxFeedPages int
}

type LogConfig struct {
	Level  string
	Format string
}

func (c Config) value(key string) string {
	switch key {
	case KeyChain:
		return c.Chain
	case KeyInfuraProjectID:
		return c.InfuraProjectID
	case KeyNeynarAPIKey:
		return c.Neynar.APIKey
	case KeyNeynarSigner:
		return c.Neynar.SignerUUID
	case KeyGovernance:
		return c.Governance.Address
	case KeyTokenAddress:
		return c.TokenAddress
	case KeyBotFID:
		return c.BotFID
	default:
		return ""
	}
}

// Validate reports every missing required key in one error.
func (c Config) Validate() error {
	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(c.value(key)) == "" {
			missing = append(missing, fmt.Sprintf("%s (%s)", key, strings.Join(envNames[key], " or ")))
		}
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", ")))
	}
	if !c.Tagging.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", domain.ErrInvalidTagMode, string(c.Tagging)))
	}
	if c.Announce.PostDelay < 0 {
		errs = append(errs, errors.New("announce.post_delay must not be negative"))
	}
	if c.Announce.MaxFeedPages < 0 {
		errs = append(errs, errors.New("announce.max_feed_pages must not be negative"))
	}

	return errors.Join(errs...)
}

type SecretResolver interface {
	Resolve(ctx context.Context, value string) (string, error)
}

// ResolveSecrets replaces secret references in the Neynar credentials with
// their stored values.
func (c *Config) ResolveSecrets(ctx context.Context, resolver SecretResolver) error {
	apiKey, err := resolver.Resolve(ctx, c.Neynar.APIKey)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", KeyNeynarAPIKey, err)
	}
	signer, err := resolver.Resolve(ctx, c.Neynar.SignerUUID)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", KeyNeynarSigner, err)
	}

	c.Neynar.APIKey = apiKey
	c.Neynar.SignerUUID = signer
	return nil
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	c.InfuraProjectID = mask(c.InfuraProjectID)
	c.Neynar.APIKey = mask(c.Neynar.APIKey)
	c.Neynar.SignerUUID = mask(c.Neynar.SignerUUID)
	return c
}

func mask(value string) string {
	switch {
	case value == "":
		return ""
	case isSecretRef(value):
		return value
	case len(value) <= 8:
		return "********"
	default:
		return value[:4] + "…" + value[len(value)-2:]
	}
}

func isSecretRef(value string) bool {
	scheme, _, ok := strings.Cut(value, ":")
	return ok && (scheme == "pass" || scheme == "file" || scheme == "secret")
}
