package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/propcast/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

var ErrConfigExists = errors.New("config file already exists")

type fileSchema struct {
	Chain      string           `toml:"chain" comment:"Network name as used by Infura (goerli, sepolia, mainnet, base, ...)"`
	Tagging    string           `toml:"tagging" comment:"enabled or disabled; empty means enabled"`
	Infura     infuraSchema     `toml:"infura"`
	Neynar     neynarSchema     `toml:"neynar"`
	Governance governanceSchema `toml:"governance"`
	Token      tokenSchema      `toml:"token"`
	Bot        botSchema        `toml:"bot"`
	Announce   announceSchema   `toml:"announce"`
	Log        logSchema        `toml:"log"`
}

type infuraSchema struct {
	ProjectID string `toml:"project_id"`
}

type neynarSchema struct {
	APIKey     string `toml:"api_key" comment:"Literal value or a reference: pass:<entry>, file:<path>, secret:<key>"`
	SignerUUID string `toml:"signer_uuid" comment:"Managed signer used to publish casts; accepts the same references"`
	BaseURL    string `toml:"base_url"`
}

type governanceSchema struct {
	Address string `toml:"address" comment:"Governor contract emitting ProposalCreated"`
	ABIPath string `toml:"abi_path" comment:"Optional ABI file; the Nouns Builder event signature is used when empty"`
}

type tokenSchema struct {
	Address string `toml:"address" comment:"DAO token contract; also the path segment of proposal links"`
}

type botSchema struct {
	FID string `toml:"fid" comment:"Farcaster id of the bot account"`
}

type announceSchema struct {
	DAOName      string `toml:"dao_name"`
	URLBase      string `toml:"url_base"`
	PostDelay    string `toml:"post_delay" comment:"Pause between historical announcements"`
	MaxFeedPages int    `toml:"max_feed_pages" comment:"Upper bound on feed pages read per check; 0 means unbounded"`
}

type logSchema struct {
	Level  string `toml:"level"`
	Format string `toml:"format" comment:"text or json"`
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		Chain:   cfg.Chain,
		Tagging: string(cfg.Tagging),
		Infura:  infuraSchema{ProjectID: cfg.InfuraProjectID},
		Neynar: neynarSchema{
			APIKey:     cfg.Neynar.APIKey,
			SignerUUID: cfg.Neynar.SignerUUID,
			BaseURL:    cfg.Neynar.BaseURL,
		},
		Governance: governanceSchema{Address: cfg.Governance.Address, ABIPath: cfg.Governance.ABIPath},
		Token:      tokenSchema{Address: cfg.TokenAddress},
		Bot:        botSchema{FID: cfg.BotFID},
		Announce: announceSchema{
			DAOName:      cfg.Announce.DAOName,
			URLBase:      cfg.Announce.URLBase,
			PostDelay:    cfg.Announce.PostDelay.String(),
			MaxFeedPages: cfg.Announce.MaxFeedPages,
		},
		Log: logSchema{Level: cfg.Log.Level, Format: cfg.Log.Format},
	}
}

// Template is the configuration written by "config init".
func Template() Config {
	return Config{
		Chain: DefaultChain,
		Neynar: NeynarConfig{
			APIKey:     "secret:neynar/api_key",
			SignerUUID: "secret:neynar/signer_uuid",
			BaseURL:    defaultNeynarURL,
		},
		Announce: AnnounceConfig{
			DAOName:   domain.DefaultDAOName,
			URLBase:   domain.DefaultURLBase,
			PostDelay: DefaultPostDelay,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

func Encode(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(toSchema(cfg))
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return data, nil
}

// WriteFile writes cfg to path through a temporary file and a rename.
// An existing file is only replaced when force is set.
func WriteFile(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tempName := tempFile.Name()
	defer func() { _ = os.Remove(tempName) }()

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	return nil
}
