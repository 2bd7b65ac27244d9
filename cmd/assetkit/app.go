package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	assetkit "github.com/alnah/go-assetkit"
	"github.com/alnah/go-assetkit/internal/config"
	"github.com/alnah/go-assetkit/internal/fileutil"
	"github.com/alnah/go-assetkit/internal/hints"
	"github.com/alnah/go-assetkit/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrInvalidFormat      = errors.New("invalid output format")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidColumns     = errors.New("invalid column count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrUnsupportedOutput  = errors.New("unsupported output extension")
	ErrVerifyFailed       = errors.New("verification failed")
)

// EnvConfig names the config used when --config is not given.
const EnvConfig = "ASSETKIT_CONFIG"

// hintError decorates an error with an actionable hint from package hints.
type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() + e.hint }
func (e *hintError) Unwrap() error { return e.err }

// withHint attaches hint to err. An empty hint returns err unchanged.
func withHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return &hintError{err: err, hint: hint}
}

// writeFailed wraps an output error, hinting at the parent directory when it
// could not be created.
func writeFailed(err error) error {
	err = fmt.Errorf("%w: %w", ErrWriteOutput, err)
	if errors.Is(err, fileutil.ErrOutputDirectory) {
		return withHint(err, hints.ForOutputDirectory())
	}
	return err
}

// run dispatches a command and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "resolve":
		err = runResolve(rest, env)
	case "cat":
		err = runCat(rest, env)
	case "list":
		err = runList(rest, env)
	case "verify":
		err = runVerify(ctx, rest, env)
	case "gallery":
		err = runGallery(ctx, rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "assetkit %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return runHelp([]string{cmd}, env)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(env.Stderr, "Run 'assetkit help %s' for usage.\n", cmd)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// session holds what a command needs once flags are parsed: the merged
// configuration, the logger and the registry.
type session struct {
	cfg      *config.Config
	logger   zerolog.Logger
	registry *assetkit.Registry
}

// openSession loads the config, builds the logger and creates the registry.
// The --dir flag applies to collection and wins over the config.
func openSession(f commonFlags, collection string, env *Environment) (*session, error) {
	cfg, err := loadConfig(f.config, env)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg, f, env)
	if err != nil {
		return nil, err
	}

	opts := []assetkit.Option{assetkit.WithLogger(logger)}
	for name, c := range cfg.Collections {
		opts = append(opts, assetkit.WithCollectionDir(name, c.Dir))
	}
	if f.dir != "" && collection != "" {
		opts = append(opts, assetkit.WithCollectionDir(collection, f.dir))
	}

	reg, err := env.NewRegistry(opts...)
	if err != nil {
		if errors.Is(err, assetkit.ErrUnknownCollection) {
			// Names of the built-ins: the registry could not be built to ask it.
			return nil, withHint(err, hints.ForUnknownCollection([]string{
				assetkit.CollectionFonts, assetkit.CollectionSVG, assetkit.CollectionUIIcons,
			}))
		}
		return nil, err
	}

	return &session{cfg: cfg, logger: logger, registry: reg}, nil
}

// loadConfig loads the named config, falling back to ASSETKIT_CONFIG, then defaults.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	if name == "" && env.Getenv != nil {
		name = env.Getenv(EnvConfig)
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		err = fmt.Errorf("loading config: %w", err)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the CLI logger. Priority: --quiet/--verbose, then
// ASSETKIT_LOG_* variables, then the config file.
func newLogger(cfg *config.Config, f commonFlags, env *Environment) (zerolog.Logger, error) {
	lc := logging.DefaultConfig()
	lc.Output = env.Stderr

	if cfg.Logging.Level != "" {
		level, err := logging.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("%w: logging.level: %v", config.ErrInvalidValue, err)
		}
		lc.Level = level
	}
	if cfg.Logging.Format != "" {
		format, err := logging.ParseFormat(cfg.Logging.Format)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("%w: logging.format: %v", config.ErrInvalidValue, err)
		}
		lc.Format = format
	}

	lc = logging.ApplyEnv(lc, env.Getenv)

	switch {
	case f.quiet:
		lc.Level = zerolog.ErrorLevel
	case f.verbose:
		lc.Level = zerolog.DebugLevel
	}

	return logging.New(lc), nil
}

// collection looks name up, hinting at the registered names on failure.
func (s *session) collection(name string) (*assetkit.Collection, error) {
	c, err := s.registry.Collection(name)
	if err != nil {
		return nil, withHint(err, hints.ForUnknownCollection(s.registry.Names()))
	}
	return c, nil
}

// notFound decorates a resolution error with suggestions, or with a hint to
// populate the collection when it is empty.
func notFound(c *assetkit.Collection, name string, err error) error {
	if c.Len() == 0 {
		return withHint(err, hints.ForEmptyCollection(c.Name()))
	}
	return withHint(err, hints.ForNotFound(c.Suggest(name, 3)))
}
