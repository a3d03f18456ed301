package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/propcast/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName       = "config"
	configType       = "toml"
	configDir        = ".config/propcast"
	defaultDotEnv    = ".env"
	defaultNeynarURL = "https://api.neynar.com"
)

type Options struct {
	// ConfigFile overrides the default search path. A missing explicit
	// file is an error; a missing default file is not.
	ConfigFile string
	// DotEnvFile defaults to .env in the working directory.
	DotEnvFile string
}

func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir), nil
}

func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, configName+"."+configType), nil
}

// NewViper returns a viper instance with defaults and environment bindings.
// Callers bind flags on it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyChain, DefaultChain)
	v.SetDefault(KeyNeynarBaseURL, defaultNeynarURL)
	v.SetDefault(KeyDAOName, domain.DefaultDAOName)
	v.SetDefault(KeyURLBase, domain.DefaultURLBase)
	v.SetDefault(KeyPostDelay, DefaultPostDelay.String())
	v.SetDefault(KeyMaxFeedPages, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	for key, names := range envNames {
		_ = v.BindEnv(append([]string{key}, names...)...)
	}

	return v
}

// Load merges flags, environment, the .env file and the TOML config file,
// in that order of precedence. It does not validate.
func Load(v *viper.Viper, opts Options) (Config, error) {
	if v == nil {
		v = NewViper()
	}

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return Config{}, err
	}

	dotenv, err := readDotEnv(opts.DotEnvFile)
	if err != nil {
		return Config{}, err
	}
	if overrides := dotenvOverrides(dotenv); len(overrides) > 0 {
		if err := v.MergeConfigMap(overrides); err != nil {
			return Config{}, fmt.Errorf("merge .env values: %w", err)
		}
	}

	tagging, err := tagMode(v, dotenv)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Chain:           strings.TrimSpace(v.GetString(KeyChain)),
		InfuraProjectID: strings.TrimSpace(v.GetString(KeyInfuraProjectID)),
		Neynar: NeynarConfig{
			APIKey:     strings.TrimSpace(v.GetString(KeyNeynarAPIKey)),
			SignerUUID: strings.TrimSpace(v.GetString(KeyNeynarSigner)),
			BaseURL:    strings.TrimSpace(v.GetString(KeyNeynarBaseURL)),
		},
		Governance: GovernanceConfig{
			Address: strings.TrimSpace(v.GetString(KeyGovernance)),
			ABIPath: strings.TrimSpace(v.GetString(KeyGovernanceABI)),
		},
		TokenAddress: strings.TrimSpace(v.GetString(KeyTokenAddress)),
		BotFID:       strings.TrimSpace(v.GetString(KeyBotFID)),
		Announce: AnnounceConfig{
			DAOName:      v.GetString(KeyDAOName),
			URLBase:      strings.TrimSpace(v.GetString(KeyURLBase)),
			PostDelay:    v.GetDuration(KeyPostDelay),
			MaxFeedPages: v.GetInt(KeyMaxFeedPages),
		},
		Tagging: tagging,
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}, nil
}

func readConfigFile(v *viper.Viper, explicit string) error {
	v.SetConfigType(configType)

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", explicit, err)
		}
		return nil
	}

	dir, err := DefaultDir()
	if err != nil {
		return err
	}
	v.SetConfigName(configName)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

func readDotEnv(path string) (*viper.Viper, error) {
	if path == "" {
		path = defaultDotEnv
	}

	dv := viper.New()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return dv, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	dv.SetConfigFile(path)
	dv.SetConfigType("env")
	if err := dv.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return dv, nil
}

// dotenvOverrides maps .env variables onto nested config keys so they can
// be merged above the config file and below the real environment.
func dotenvOverrides(dotenv *viper.Viper) map[string]any {
	out := map[string]any{}
	for key, names := range envNames {
		for _, name := range names {
			lower := strings.ToLower(name)
			if !dotenv.IsSet(lower) {
				continue
			}
			setNested(out, key, dotenv.GetString(lower))
			break
		}
	}

	return out
}

func setNested(dst map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	node := dst
	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[part] = child
		}
		node = child
	}
	node[parts[len(parts)-1]] = value
}

// tagMode resolves tagging one source layer at a time so the legacy switch
// keeps its place in the precedence: environment, then .env, then the config
// file. Within a layer the explicit tagging value wins over the legacy one.
// The run --no-tag flag is applied after Load.
func tagMode(v *viper.Viper, dotenv *viper.Viper) (domain.TagMode, error) {
	if raw := lookupEnv(envNames[KeyTagging]...); raw != "" {
		return domain.ParseTagMode(raw)
	}
	if raw := lookupEnv(legacyNoTagEnv); raw != "" {
		return domain.TagModeFromNoTag(raw)
	}

	for _, name := range envNames[KeyTagging] {
		if lower := strings.ToLower(name); dotenv.IsSet(lower) {
			return domain.ParseTagMode(dotenv.GetString(lower))
		}
	}
	if lower := strings.ToLower(legacyNoTagEnv); dotenv.IsSet(lower) {
		return domain.TagModeFromNoTag(dotenv.GetString(lower))
	}

	if raw := v.GetString(KeyTagging); strings.TrimSpace(raw) != "" {
		return domain.ParseTagMode(raw)
	}

	return domain.TagModeUnset, nil
}

func lookupEnv(names ...string) string {
	for _, name := range names {
		if raw, ok := os.LookupEnv(name); ok && strings.TrimSpace(raw) != "" {
			return raw
		}
	}
	return ""
}
