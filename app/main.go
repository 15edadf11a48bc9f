package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pitwall-app/pitwall/app/jsonfile"
	"github.com/pitwall-app/pitwall/app/maintenance"
	"github.com/pitwall-app/pitwall/app/notify"
	"github.com/pitwall-app/pitwall/app/preset"
	"github.com/pitwall-app/pitwall/app/setting"
	"github.com/pitwall-app/pitwall/app/stats"
	"github.com/pitwall-app/pitwall/app/telemetry"
	"github.com/pitwall-app/pitwall/app/web"
)

var opts struct {
	ConfigDir string `short:"c" long:"config-dir" env:"PITWALL_CONFIG_DIR" default:"." description:"directory holding config.json"`
	PresetDir string `short:"p" long:"preset-dir" env:"PITWALL_PRESET_DIR" default:"presets" description:"directory holding preset and style files"`
	Preset    string `long:"preset" env:"PITWALL_PRESET" description:"preset to load on start, defaults to the last used one"`
	DBFile    string `long:"db" env:"PITWALL_DB" default:"pitwall.db" description:"stats database file, empty disables stats"`
	Dbg       bool   `long:"dbg" env:"PITWALL_DEBUG" description:"debug mode"`

	Save struct {
		Debounce    time.Duration `long:"debounce" env:"DEBOUNCE" default:"660ms" description:"delay before a queued save flushes"`
		MaxAttempts int           `long:"max-attempts" env:"MAX_ATTEMPTS" default:"3" description:"write attempts per save pass"`
		RetryDelay  time.Duration `long:"retry-delay" env:"RETRY_DELAY" default:"50ms" description:"delay between failed write attempts"`
	} `group:"save" namespace:"save" env-namespace:"PITWALL_SAVE"`

	Telemetry struct {
		Enabled  bool          `long:"enabled" env:"ENABLED" description:"enable simulator telemetry polling"`
		Config   string        `long:"config" env:"CONFIG" description:"telemetry endpoints file, embedded defaults when empty"`
		Interval time.Duration `long:"interval" env:"INTERVAL" default:"1s" description:"poll interval"`
	} `group:"telemetry" namespace:"telemetry" env-namespace:"PITWALL_TELEMETRY"`

	Web struct {
		Enabled      bool          `long:"enabled" env:"ENABLED" description:"enable web API"`
		Address      string        `long:"address" env:"ADDRESS" default:":8080" description:"web server address"`
		BaseURL      string        `long:"base-url" env:"BASE_URL" description:"base URL path when behind a reverse proxy"`
		PasswordHash string        `long:"password-hash" env:"PASSWORD_HASH" description:"bcrypt hash protecting the API, empty disables auth"`
		LoginTTL     time.Duration `long:"login-ttl" env:"LOGIN_TTL" default:"24h" description:"web session lifetime"`
	} `group:"web" namespace:"web" env-namespace:"PITWALL_WEB"`

	Notify struct {
		EnabledFailure  bool          `long:"enabled-failure" env:"ENABLED_FAILURE" description:"enable notifications on exhausted saves"`
		FailureTemplate string        `long:"failure-template" env:"FAILURE_TEMPLATE" description:"failure message template file"`
		SMTPHost        string        `long:"smtp-host" env:"SMTP_HOST" description:"SMTP host"`
		SMTPPort        int           `long:"smtp-port" env:"SMTP_PORT" description:"SMTP port"`
		SMTPUsername    string        `long:"smtp-username" env:"SMTP_USERNAME" description:"SMTP user name"`
		SMTPPassword    string        `long:"smtp-password" env:"SMTP_PASSWORD" description:"SMTP password"`
		SMTPTLS         bool          `long:"smtp-tls" env:"SMTP_TLS" description:"enable SMTP TLS"`
		SMTPStartTLS    bool          `long:"smtp-starttls" env:"SMTP_STARTTLS" description:"enable SMTP StartTLS"`
		SMTPTimeOut     time.Duration `long:"smtp-timeout" env:"SMTP_TIMEOUT" default:"30s" description:"SMTP TCP connection timeout"`
		FromEmail       string        `long:"from" env:"FROM" description:"from email"`
		ToEmails        []string      `long:"to" env:"TO" description:"to email(s)" env-delim:","`
		SlackToken      string        `long:"slack-token" env:"SLACK_TOKEN" description:"slack token"`
		SlackChannels   []string      `long:"slack-channels" env:"SLACK_CHANNELS" description:"slack channels" env-delim:","`
		TelegramToken   string        `long:"telegram-token" env:"TELEGRAM_TOKEN" description:"telegram token"`
		TelegramChats   []string      `long:"telegram-chats" env:"TELEGRAM_CHATS" description:"telegram chat ids" env-delim:","`
		WebhookURLs     []string      `long:"webhook-urls" env:"WEBHOOK_URLS" description:"webhook urls" env-delim:","`
		WebhookHeaders  []string      `long:"webhook-headers" env:"WEBHOOK_HEADERS" description:"webhook headers (header:value)" env-delim:","`
		HostName        string        `long:"host" env:"HOSTNAME" description:"host name running pitwall"`
	} `group:"notify" namespace:"notify" env-namespace:"PITWALL_NOTIFY"`

	Maintenance struct {
		Enabled     bool          `long:"enabled" env:"ENABLED" description:"enable scheduled housekeeping"`
		Schedule    string        `long:"schedule" env:"SCHEDULE" default:"10 3 * * *" description:"cron spec for housekeeping runs"`
		Retention   time.Duration `long:"retention" env:"RETENTION" default:"24h" description:"age of stale backup files to sweep"`
		KeepEvents  int           `long:"keep-events" env:"KEEP_EVENTS" default:"1000" description:"save events kept in the db"`
		ExportFile  string        `long:"export-file" env:"EXPORT_FILE" description:"day-templated stats export destination"`
		CPUBelow    int           `long:"cpu-below" env:"CPU_BELOW" description:"skip when CPU usage percent is at or above, 0 disables"`
		MemoryBelow int           `long:"memory-below" env:"MEMORY_BELOW" description:"skip when memory usage percent is at or above, 0 disables"`
	} `group:"maintenance" namespace:"maintenance" env-namespace:"PITWALL_MAINTENANCE"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging to file"`
		Filename        string `long:"filename" env:"FILENAME" default:"pitwall.log" description:"log file name"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"maximum log size in megabytes"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" description:"maximum log age in days"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"maximum rotated logs kept"`
		EnabledCompress bool   `long:"enabled-compress" env:"ENABLED_COMPRESS" description:"enable gzip compression of rotated logs"`
	} `group:"log" namespace:"log" env-namespace:"PITWALL_LOG"`
}

var revision = "unknown"

func main() {
	fmt.Printf("pitwall %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT and SIGTERM

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] pitwall terminated, %v", err)
		os.Exit(1)
	}
}

// run wires the subsystems together and blocks until ctx is canceled. Pending
// saves are flushed before return so a shutdown never loses edits.
func run(ctx context.Context) error {
	var store *stats.SQLiteStore
	if opts.DBFile != "" {
		s, err := stats.NewSQLiteStore(opts.DBFile)
		if err != nil {
			return fmt.Errorf("can't open stats db: %w", err)
		}
		store = s
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("[WARN] can't close stats db, %v", err)
			}
		}()
	}

	params := setting.Params{
		FileOps:     jsonfile.Ops{},
		MaxAttempts: opts.Save.MaxAttempts,
		RetryDelay:  opts.Save.RetryDelay,
	}
	if notifier := makeNotifier(); notifier != nil {
		params.Notifier = notifier
	}
	if store != nil {
		params.History = store
	}
	engine := setting.NewEngine(params)

	manager := setting.NewManager(engine, opts.ConfigDir, opts.PresetDir, opts.Save.Debounce)
	if err := manager.Load(opts.Preset); err != nil {
		return fmt.Errorf("can't load settings: %w", err)
	}
	presets := preset.New(opts.PresetDir, engine)

	var telemetryStore *telemetry.Store
	if opts.Telemetry.Enabled {
		cfg, err := telemetry.LoadConfig(opts.Telemetry.Config)
		if err != nil {
			return fmt.Errorf("can't load telemetry config: %w", err)
		}
		telemetryStore = telemetry.NewStore()
		poller := &telemetry.Poller{
			Store:     telemetryStore,
			Detector:  telemetry.NewProcessDetector(cfg),
			Interval:  opts.Telemetry.Interval,
			OnConnect: func(sim telemetry.SimConfig) { activatePrimary(manager, sim.Name) },
		}
		go func() {
			if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("[WARN] telemetry poller stopped, %v", err)
			}
		}()
	}

	if opts.Web.Enabled {
		cfg := web.Config{
			Engine:       engine,
			Settings:     manager,
			Presets:      presets,
			BaseURL:      validateBaseURL(opts.Web.BaseURL),
			Version:      revision,
			PasswordHash: opts.Web.PasswordHash,
			LoginTTL:     opts.Web.LoginTTL,
		}
		// assign optional collaborators only when enabled, a typed nil would
		// pass the interface nil checks otherwise
		if telemetryStore != nil {
			cfg.Telemetry = telemetryStore
		}
		if store != nil {
			cfg.Stats = store
		}
		srv, err := web.New(cfg)
		if err != nil {
			return fmt.Errorf("can't create web server: %w", err)
		}
		go func() {
			if err := srv.Run(ctx, opts.Web.Address); err != nil {
				log.Printf("[ERROR] web server failed, %v", err)
			}
		}()
	}

	if opts.Maintenance.Enabled {
		svc := maintenance.Service{
			Cron:       cron.New(),
			Dirs:       []string{opts.ConfigDir, opts.PresetDir},
			Spec:       opts.Maintenance.Schedule,
			Retention:  opts.Maintenance.Retention,
			KeepEvents: opts.Maintenance.KeepEvents,
			ExportFile: opts.Maintenance.ExportFile,
			Conditions: maintenance.Conditions{
				CPUBelow:    opts.Maintenance.CPUBelow,
				MemoryBelow: opts.Maintenance.MemoryBelow,
			},
		}
		if store != nil {
			svc.Stats = store
		}
		if telemetryStore != nil {
			svc.Conditions.SimRunning = func() bool { return telemetryStore.Get().Connected }
		}
		go svc.Do(ctx)
	}

	<-ctx.Done()
	log.Printf("[INFO] shutdown requested")

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer flushCancel()
	if err := engine.Wait(flushCtx); err != nil {
		log.Printf("[WARN] pending saves not flushed, %v", err)
	}
	return nil
}

// activatePrimary switches to the preset pinned to the detected simulator
func activatePrimary(manager *setting.Manager, sim string) {
	name := manager.PrimaryPreset(sim)
	if name == "" || name == manager.ActivePreset() {
		return
	}
	log.Printf("[INFO] switching to primary preset %q for %s", name, sim)
	if err := manager.Load(name); err != nil {
		log.Printf("[WARN] can't load primary preset %q, %v", name, err)
	}
}

// makeNotifier builds the save-failure notification service, nil when disabled
func makeNotifier() *notify.Service {
	if !opts.Notify.EnabledFailure {
		return nil
	}

	if opts.Notify.FromEmail == "" {
		opts.Notify.FromEmail = "pitwall@" + makeHostName()
	}

	return notify.NewService(
		notify.Params{
			EnabledFailure:  opts.Notify.EnabledFailure,
			FailureTemplate: opts.Notify.FailureTemplate,
		},
		notify.SendersParams{
			ToEmails:             opts.Notify.ToEmails,
			FromEmail:            opts.Notify.FromEmail,
			SMTPHost:             opts.Notify.SMTPHost,
			SMTPPort:             opts.Notify.SMTPPort,
			SMTPUsername:         opts.Notify.SMTPUsername,
			SMTPPassword:         opts.Notify.SMTPPassword,
			SMTPTLS:              opts.Notify.SMTPTLS,
			SMTPStartTLS:         opts.Notify.SMTPStartTLS,
			SlackToken:           opts.Notify.SlackToken,
			SlackChannels:        opts.Notify.SlackChannels,
			TelegramToken:        opts.Notify.TelegramToken,
			TelegramDestinations: opts.Notify.TelegramChats,
			WebhookURLs:          opts.Notify.WebhookURLs,
			WebhookHeaders:       opts.Notify.WebhookHeaders,
			TimeOut:              opts.Notify.SMTPTimeOut,
		},
	)
}

func makeHostName() string {
	if opts.Notify.HostName != "" {
		return opts.Notify.HostName
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

// validateBaseURL normalizes the base URL path: no trailing slash, empty for
// root, leading slash enforced
func validateBaseURL(s string) string {
	s = strings.TrimRight(s, "/")
	if s != "" && !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return s
}

// setupLogs configures lgr and returns the active log destination
func setupLogs() io.Writer {
	out := io.Writer(os.Stdout)
	if opts.Log.Enabled {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile, log.Out(out))
		return out
	}
	log.Setup(log.Msec, log.Out(out))
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			cancel() // terminate on SIGTERM or SIGINT
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
