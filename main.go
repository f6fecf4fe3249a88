package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"shopgrip/internal/cartsession"
	"shopgrip/internal/catalog"
	"shopgrip/internal/config"
	"shopgrip/internal/eventbus"
	"shopgrip/internal/logic"
	"shopgrip/internal/mockstore"
	"shopgrip/internal/storefront"
	"shopgrip/internal/ui"
)

func main() {
	var (
		configPath string
		storeFlag  string
		useMock    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config directory)")
	flag.StringVar(&storeFlag, "store", "", "Storefront domain, e.g. my-shop.myshopify.com")
	flag.StringVar(&storeFlag, "s", "", "Storefront domain (shorthand)")
	flag.BoolVar(&useMock, "mock", false, "Browse the built-in mock storefront")
	flag.Parse()

	if storeFlag == "" && flag.NArg() > 0 {
		storeFlag = flag.Arg(0)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	if configPath != "" {
		configSvc = config.NewConfigServiceForPath(configPath, bus)
	}
	cfg := loadOrCreateConfig(configSvc)
	cfg.ApplyEnv(os.Getenv)
	if storeFlag != "" {
		cfg.Store.Domain = storeFlag
	}

	logFile := setupLogging(cfg.Log)
	if logFile != nil {
		defer logFile.Close()
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if useMock {
		addr, stop, err := startMockStore(ctx)
		if err != nil {
			fmt.Printf("Error starting mock storefront: %v\n", err)
			os.Exit(1)
		}
		defer stop()
		cfg.Store.Domain = "http://" + addr
		cfg.Store.AccessToken = ""
	}

	if cfg.Store.Domain == "" {
		fmt.Printf("No storefront configured. Pass -store <domain>, set SHOPGRIP_STORE_DOMAIN, or edit %s\n", configSvc.Path())
		os.Exit(1)
	}

	client, err := storefront.NewClient(storefront.Options{
		Endpoint:        cfg.Endpoint(),
		AccessToken:     cfg.Store.AccessToken,
		Country:         cfg.Store.Country,
		Language:        cfg.Store.Language,
		Timeout:         cfg.Client.Timeout(),
		BreakerFailures: uint32(cfg.Client.BreakerFailures),
		BreakerCooldown: cfg.Client.BreakerCooldown(),
	})
	if err != nil {
		fmt.Printf("Error creating storefront client: %v\n", err)
		os.Exit(1)
	}
	log.Infof("Using storefront %s", client.Endpoint())

	// Initialize services
	catalogStore := logic.NewMemoryCatalogStore()
	cartStore := logic.NewMemoryCartStore()
	searcher := storefront.NewCachedSearch(client, cfg.Search.CacheSize, cfg.Search.CacheTTL(), cfg.Search.ResultLimit)
	session := cartsession.New(client, cartStore)
	loader := catalog.NewLoader(bus, client, catalogStore, catalog.DefaultLimits())
	defer loader.Stop()

	uiModel := ui.NewModel(bus, cfg, ui.Services{
		Search:     searcher,
		Cart:       session,
		CartReader: session,
		Catalog:    catalogStore,
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward the events the UI renders
	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	bus.Subscribe(eventbus.EventCatalogLoaded, forward)
	bus.Subscribe(eventbus.EventError, forward)

	bus.Subscribe(eventbus.EventSearchIssued, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchIssuedEvent); ok {
			log.WithField("seq", ev.Seq).Debugf("Search issued: %q", ev.Query)
		}
	})
	bus.Subscribe(eventbus.EventSearchSettled, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchSettledEvent); ok {
			log.WithFields(log.Fields{"seq": ev.Seq, "accepted": ev.Accepted}).
				Debugf("Search settled: %q (%d results)", ev.Query, ev.Results)
		}
	})
	bus.Subscribe(eventbus.EventCartLinesAdded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.CartLinesAddedEvent); ok {
			log.WithField("cart", ev.CartID).Infof("Cart now holds %d items", ev.TotalQuantity)
		}
	})
	bus.Subscribe(eventbus.EventCartPanelOpened, func(e eventbus.DomainEvent) {
		log.Debugf("Panel opened: %v", e)
	})

	if os.Getenv("SHOPGRIP_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config file, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	path := configSvc.Path()
	_, statErr := os.Stat(path)

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Could not load config from %s: %v\n", path, err)
		os.Exit(1)
	}

	if os.IsNotExist(statErr) {
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
	return cfg
}

// setupLogging sends logs to the configured file. The terminal belongs to
// the UI, so logs are discarded when the file cannot be opened.
func setupLogging(settings config.LogSettings) *os.File {
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})

	logFile, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(logFile)
	return logFile
}

// startMockStore serves the fixture storefront on a loopback port
func startMockStore(ctx context.Context) (string, func(), error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, errors.Wrap(err, "listen")
	}

	srv := &http.Server{
		Handler:           mockstore.New().Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Mock storefront stopped: %v", err)
		}
	}()
	log.Infof("Mock storefront listening on %s", ln.Addr())

	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
	return ln.Addr().String(), stop, nil
}
