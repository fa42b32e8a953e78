package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms/openai"

	"lokma/internal/api"
	"lokma/internal/chat"
	"lokma/internal/config"
	"lokma/internal/flow"
	"lokma/internal/i18n"
	"lokma/internal/logging"
	"lokma/internal/monitoring"
	"lokma/internal/order"
	"lokma/internal/session"
	"lokma/internal/tracker"
	"lokma/internal/ui"
)

var (
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	logFile     = flag.String("log-file", "lokma.log", "Log file path")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := openLogger(cfg.LogLevel, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	drafts, err := session.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open draft store: %v", err)
	}
	defer drafts.Close()

	store := order.NewStore(cfg.Language(), drafts, log)
	store.Restore()

	client := api.NewClient(cfg.APIBaseURL)
	monitor := monitoring.NewMonitor()
	submitter := flow.NewSubmitter(client, store, monitor, log)

	trk := tracker.New(client, store, monitor, log)
	trk.SetInterval(cfg.PollInterval)
	trk.SetResetDelay(cfg.ResetDelay)
	defer trk.Stop()

	transcript := chat.NewTranscript(i18n.For(cfg.Language()).ChatbotWelcome)
	responder := buildResponder(cfg, log)

	if cfg.PushURL != "" {
		notifier := chat.NewNotifier(cfg.PushURL, transcript, log)
		go notifier.Run(ctx)
	}

	if cfg.MetricsConfig.Enabled {
		port := cfg.MetricsConfig.Port
		if *metricsPort != 0 {
			port = *metricsPort
		}
		go startMetricsServer(port, monitor, log)
	}

	// Stop cleanly when the terminal session is killed out from under us.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		cancel()
	}()

	app := ui.New(ctx, store, submitter, trk, client, responder, transcript, log)
	p := tea.NewProgram(app)
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}

// openLogger sends logs to a file; the terminal belongs to the UI.
func openLogger(level, path string) (*logrus.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return logging.NewWriter(level, f), func() { f.Close() }, nil
}

// buildResponder picks the chat assistant implementation: an LLM when a key
// is configured, keyword rules otherwise.
func buildResponder(cfg *config.Config, log logrus.FieldLogger) chat.Responder {
	if cfg.OpenAIKey == "" {
		return chat.RuleResponder{}
	}
	llm, err := openai.New(openai.WithToken(cfg.OpenAIKey))
	if err != nil {
		log.WithError(err).Warn("failed to initialize LLM assistant, using rule-based replies")
		return chat.RuleResponder{}
	}
	return chat.NewLLMResponder(llm)
}

func startMetricsServer(port int, monitor *monitoring.Monitor, log logrus.FieldLogger) {
	gin.SetMode(gin.ReleaseMode)
	metricsRouter := gin.New()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))
	metricsRouter.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, monitor.Stats())
	})
	metricsRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Infof("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Errorf("Metrics server error: %v", err)
	}
}
