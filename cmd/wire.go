package cmd

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	ethadapter "github.com/bnema/propcast/internal/adapters/ethereum"
	identityadapter "github.com/bnema/propcast/internal/adapters/identity"
	neynaradapter "github.com/bnema/propcast/internal/adapters/neynar"
	planadapter "github.com/bnema/propcast/internal/adapters/render/plan"
	chainstore "github.com/bnema/propcast/internal/adapters/secrets/chain"
	passstore "github.com/bnema/propcast/internal/adapters/secrets/pass"
	"github.com/bnema/propcast/internal/adapters/secrets/ref"
	"github.com/bnema/propcast/internal/application"
	"github.com/bnema/propcast/internal/config"
	"github.com/bnema/propcast/internal/domain"
	"github.com/bnema/propcast/internal/logging"
	"github.com/bnema/propcast/internal/ports"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const passPrefix = "propcast"

type connectMode int

const (
	// connectQuery opens only what read-only commands need.
	connectQuery connectMode = iota
	// connectStream also opens the websocket used for live subscriptions.
	connectStream
)

type services struct {
	events   ports.EventSource
	identity ports.IdentityResolver
	sink     ports.PostSink
	close    func()
}

type connectFunc func(ctx context.Context, cfg config.Config, logger logrus.FieldLogger, mode connectMode) (*services, error)

type app struct {
	viper            *viper.Viper
	configFile       string
	dotEnvFile       string
	secretStore      ports.SecretStore
	passStore        ports.SecretStore
	clock            ports.Clock
	connect          connectFunc
	planRenderer     func(application.Plan) (string, error)
	audienceRenderer func([]domain.TagBatch) (string, error)
}

func wireApp() (*app, error) {
	configDir, err := config.DefaultDir()
	if err != nil {
		return nil, err
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(passPrefix, filepath.Join(configDir, "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		viper:            config.NewViper(),
		secretStore:      secretStore,
		passStore:        passstore.NewStore(""),
		clock:            ports.SystemClock{},
		connect:          connectServices,
		planRenderer:     planadapter.Render,
		audienceRenderer: planadapter.RenderAudience,
	}, nil
}

// loadConfig reads, validates and resolves secret references.
func (a *app) loadConfig(ctx context.Context) (config.Config, error) {
	cfg, err := config.Load(a.viper, config.Options{ConfigFile: a.configFile, DotEnvFile: a.dotEnvFile})
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if err := cfg.ResolveSecrets(ctx, ref.Resolver{Pass: a.passStore, Managed: a.secretStore}); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

type session struct {
	engine *application.Engine
	logger *logrus.Logger
	close  func()
}

func (a *app) openSession(cmd *cobra.Command, mode connectMode, override func(*config.Config)) (*session, error) {
	cfg, err := a.loadConfig(cmd.Context())
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(&cfg)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	engineCfg := engineConfig(cfg)
	if err := engineCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}

	svc, err := a.connect(cmd.Context(), cfg, logger, mode)
	if err != nil {
		return nil, err
	}

	return &session{
		engine: application.NewEngine(svc.events, svc.identity, svc.sink, a.clock, logger, engineCfg),
		logger: logger,
		close:  svc.close,
	}, nil
}

func (s *session) Close() {
	if s.close != nil {
		s.close()
	}
}

func engineConfig(cfg config.Config) application.EngineConfig {
	return application.EngineConfig{
		AuthorID:      domain.AuthorID(cfg.BotFID),
		TokenContract: cfg.TokenAddress,
		DAOName:       cfg.Announce.DAOName,
		URLs:          domain.URLBuilder{Base: cfg.Announce.URLBase, TokenAddress: cfg.TokenAddress},
		TagMode:       cfg.Tagging,
		PostDelay:     cfg.Announce.PostDelay,
		MaxFeedPages:  cfg.Announce.MaxFeedPages,
	}
}

func connectServices(ctx context.Context, cfg config.Config, logger logrus.FieldLogger, mode connectMode) (*services, error) {
	var topic common.Hash
	if cfg.Governance.ABIPath != "" {
		loaded, err := ethadapter.LoadEventTopic(cfg.Governance.ABIPath, ethadapter.ProposalCreatedEvent)
		if err != nil {
			return nil, fmt.Errorf("load governance abi: %w", err)
		}
		topic = loaded
	}

	dial := ethadapter.DialQuery
	if mode == connectStream {
		dial = ethadapter.DialInfura
	}
	clients, err := dial(ctx, cfg.Chain, cfg.InfuraProjectID)
	if err != nil {
		return nil, err
	}

	events, err := ethadapter.NewGovernorSource(clients, cfg.Governance.Address, topic, logger)
	if err != nil {
		clients.Close()
		return nil, fmt.Errorf("wire governance event source: %w", err)
	}
	holders, err := ethadapter.NewHolderIndex(clients)
	if err != nil {
		clients.Close()
		return nil, fmt.Errorf("wire holder index: %w", err)
	}

	neynar := &neynaradapter.Client{
		API:        neynaradapter.DefaultAPI(cfg.Neynar.BaseURL),
		APIKey:     cfg.Neynar.APIKey,
		SignerUUID: cfg.Neynar.SignerUUID,
		HTTPClient: http.DefaultClient,
	}

	identity, err := identityadapter.NewResolver(holders, neynar)
	if err != nil {
		clients.Close()
		return nil, fmt.Errorf("wire identity resolver: %w", err)
	}

	return &services{
		events:   events,
		identity: identity,
		sink:     neynar,
		close:    clients.Close,
	}, nil
}
