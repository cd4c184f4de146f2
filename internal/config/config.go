package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/save-point/internal/app"
	"github.com/atomicstack/save-point/internal/ui"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the YAML file that was applied, empty when none was found.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// ErrHelp is returned when -h/--help was requested.
var ErrHelp = pflag.ErrHelp

const (
	envSaveDir     = "SAVEPOINT_SAVE_DIR"
	envHandoffFile = "SAVEPOINT_HANDOFF_FILE"
	envLogFile     = "SAVEPOINT_LOG_FILE"
	envTrace       = "SAVEPOINT_TRACE"
	envShowFooter  = "SAVEPOINT_FOOTER"
	envNoPreview   = "SAVEPOINT_NO_PREVIEW"
	envRefresh     = "SAVEPOINT_REFRESH"
	envConfig      = "SAVEPOINT_CONFIG"
	envWidth       = "SAVEPOINT_WIDTH"
	envHeight      = "SAVEPOINT_HEIGHT"

	defaultRefresh = 100 * time.Millisecond
	configFileName = "config.yaml"
)

// fileConfig is the optional YAML file. Pointer fields distinguish "unset"
// from false so the file only fills in what env and flags left alone.
type fileConfig struct {
	Footer  *bool               `yaml:"footer"`
	Preview *bool               `yaml:"preview"`
	Refresh string              `yaml:"refresh"`
	Keys    map[string][]string `yaml:"keys"`
}

type flagValues struct {
	dir        *string
	handoff    *string
	logFile    *string
	trace      *bool
	footer     *bool
	noPreview  *bool
	refresh    *time.Duration
	configPath *string
	width      *int
	height     *int
	list       *bool
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs, values := newFlagSet(env)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q (save-point takes no positional arguments)", rest[0])
	}
	if *values.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *values.width)
	}
	if *values.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *values.height)
	}

	cfg := Config{
		App: app.Config{
			StoreDir:    strings.TrimSpace(*values.dir),
			HandoffPath: strings.TrimSpace(*values.handoff),
			Width:       *values.width,
			Height:      *values.height,
			ShowFooter:  *values.footer,
			Preview:     !*values.noPreview,
			Refresh:     *values.refresh,
			List:        *values.list,
		},
		Logging: Logging{
			FilePath: *values.logFile,
			Trace:    *values.trace,
		},
		Args: append([]string(nil), args...),
	}

	path, explicit := configFilePath(*values.configPath, cfg.App.StoreDir)
	if path != "" {
		file, err := readFile(path, explicit)
		if err != nil {
			return Config{}, err
		}
		if file != nil {
			cfg.File = path
			if err := applyFile(&cfg, file, fs, env); err != nil {
				return Config{}, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg.Flags = map[string]string{
		"dir":         cfg.App.StoreDir,
		"handoffFile": cfg.App.HandoffPath,
		"logFile":     cfg.Logging.FilePath,
		"trace":       strconv.FormatBool(cfg.Logging.Trace),
		"footer":      strconv.FormatBool(cfg.App.ShowFooter),
		"preview":     strconv.FormatBool(cfg.App.Preview),
		"refresh":     cfg.App.Refresh.String(),
		"width":       strconv.Itoa(cfg.App.Width),
		"height":      strconv.Itoa(cfg.App.Height),
		"config":      cfg.File,
		"list":        strconv.FormatBool(cfg.App.List),
	}
	return cfg, nil
}

// Usage returns the flag reference printed for --help.
func Usage() string {
	fs, _ := newFlagSet(nil)
	var b strings.Builder
	b.WriteString("Usage: save-point [flags]\n\n")
	b.WriteString("Pick a bookmarked directory; the choice is written to the hand-off file\n")
	b.WriteString("for the shell wrapper to cd into.\n\n")
	b.WriteString(fs.FlagUsages())
	return b.String()
}

func newFlagSet(env map[string]string) (*pflag.FlagSet, flagValues) {
	fs := pflag.NewFlagSet("save-point", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false

	return fs, flagValues{
		dir:        fs.String("dir", envOrDefault(env, envSaveDir, ""), "bookmark directory (default ~/.config/save-point)"),
		handoff:    fs.String("handoff-file", envOrDefault(env, envHandoffFile, ""), "file receiving the chosen directory (default $TMPDIR/save-point.target)"),
		logFile:    fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		trace:      fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		footer:     fs.Bool("footer", envOrBool(env, envShowFooter, false), "show the key help footer"),
		noPreview:  fs.Bool("no-preview", envOrBool(env, envNoPreview, false), "disable the directory preview panel"),
		refresh:    fs.Duration("refresh", envOrDuration(env, envRefresh, defaultRefresh), "redraw interval"),
		configPath: fs.String("config", envOrDefault(env, envConfig, ""), "YAML config file (default <dir>/config.yaml when present)"),
		width:      fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:     fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		list:       fs.Bool("list", false, "print the bookmarks and exit"),
	}
}

// configFilePath reports the file to read and whether the user named it.
// An implicit file that does not exist is simply skipped.
func configFilePath(flagValue, storeDir string) (string, bool) {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p, true
	}
	dir := storeDir
	if dir == "" {
		var err error
		if dir, err = app.DefaultStoreDir(); err != nil {
			return "", false
		}
	}
	return filepath.Join(dir, configFileName), false
}

func readFile(path string, explicit bool) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &file, nil
}

// applyFile fills settings that neither a flag nor the environment set.
func applyFile(cfg *Config, file *fileConfig, fs *pflag.FlagSet, env map[string]string) error {
	unset := func(flagName, envKey string) bool {
		if fs.Changed(flagName) {
			return false
		}
		_, ok := env[envKey]
		return !ok
	}
	if file.Footer != nil && unset("footer", envShowFooter) {
		cfg.App.ShowFooter = *file.Footer
	}
	if file.Preview != nil && unset("no-preview", envNoPreview) {
		cfg.App.Preview = *file.Preview
	}
	if file.Refresh != "" && unset("refresh", envRefresh) {
		d, err := time.ParseDuration(file.Refresh)
		if err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
		cfg.App.Refresh = d
	}
	if len(file.Keys) > 0 {
		cfg.App.Keys = file.Keys
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err == nil {
		err = Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the program cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Refresh <= 0 {
		return fmt.Errorf("refresh interval must be > 0 (got %s)", cfg.App.Refresh)
	}
	keys := ui.DefaultKeyMap()
	if err := keys.ApplyOverrides(cfg.App.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}
