package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/kosmi-edu/kosmi/internal/api"
	"github.com/kosmi-edu/kosmi/internal/auth"
	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/config"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/lessongen"
	"github.com/kosmi-edu/kosmi/internal/llm"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/observability"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
	"github.com/kosmi-edu/kosmi/internal/speech"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides KOSMI_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.ServerFromEnv()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Options{Mode: cfg.Log.Mode, Level: cfg.Log.Level, HashSalt: cfg.Log.HashSalt})
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.InitOTel(cfg.OTel, version, nil, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn("otel shutdown failed", "error", err)
		}
	}()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	var src content.Source = st.ContentRepo()
	var chars chat.CharacterSource = st.ContentRepo()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse KOSMI_REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, reading content from the database until it recovers", "error", err)
		}
		cached := content.NewCachedSource(src, rdb, cfg.CacheTTL, log)
		src, chars = cached, cached
	}

	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), st.EventRepo(), log)
	if err != nil {
		return fmt.Errorf("llm provider: %w", err)
	}

	speechCfg := speech.ConfigFromEnv()
	synth, err := speech.NewSynthesizer(speechCfg)
	if err != nil {
		return fmt.Errorf("narration backend: %w", err)
	}
	transcriber, err := speech.NewTranscriber(speechCfg)
	if err != nil {
		return fmt.Errorf("dictation backend: %w", err)
	}

	verifier, err := auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return err
	}

	deps := api.Deps{
		Log:            log,
		Verifier:       verifier,
		Profiles:       st.ProfileRepo(),
		Content:        src,
		Chat:           chat.New(chars, provider, log),
		Synthesizer:    synth,
		Transcriber:    transcriber,
		Points:         points.NewService(st.LedgerRepo(), src, log),
		Progress:       progress.NewService(st.ProgressRepo(), src, log),
		Generator:      lessongen.New(provider, lessongen.DefaultConfig(), log),
		Ping:           st.Ping,
		CORSOrigins:    cfg.CORSOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}
	if cfg.OTel.Enabled {
		deps.TraceService = cfg.OTel.ServiceName
	}

	log.Info("starting kosmi api", "version", version, "db", st.Dialect(), "llm", provider.ModelID())
	return api.NewServer(cfg.Addr, api.NewRouter(deps), cfg.ShutdownTimeout, log).Run(ctx)
}
