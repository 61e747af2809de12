package main

import (
	"context"
	"fmt"
	"io"

	"jeopardytool/internal/config"
	"jeopardytool/internal/database"
	"jeopardytool/internal/domain"
	"jeopardytool/internal/dto"
	"jeopardytool/internal/logger"
	"jeopardytool/internal/repository"
	"jeopardytool/internal/service"
	"jeopardytool/internal/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type globalFlags struct {
	configFile string
	library    string
	logLevel   string
}

// app holds what every subcommand needs once the root command has run.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	service domain.GameService
	close   func() error
}

// execute runs the command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	cmd := newRootCmd(a, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	if closeErr := a.shutdown(); err == nil {
		err = closeErr
	}
	if err != nil {
		if code := domain.CodeOf(err); code != domain.ErrOther {
			fmt.Fprintf(stderr, "Error [%s]: %v\n", code, err)
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app, stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "jeopardytool",
		Short:         "Create, convert and inspect Jeopardy games",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context(), flags, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default: config.yaml in ., ./configs or ~/.jeopardytool)")
	pf.StringVar(&flags.library, "library", "", "game library: a directory for the file driver, a database file for sqlite")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newShowCmd(a),
		newCreateCmd(a),
		newConvertCmd(a),
	)
	return root
}

func (a *app) init(ctx context.Context, flags globalFlags, stderr io.Writer) error {
	cfg, err := config.LoadConfig(flags.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if flags.library != "" {
		cfg.Library.Path = flags.library
	}
	if flags.logLevel != "" {
		cfg.Logger.Level = flags.logLevel
	}

	log, err := logger.New(cfg.Logger, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	a.log = log
	a.log.Debug("Configuration loaded",
		zap.String("file", cfg.File),
		zap.String("driver", cfg.Library.Driver),
		zap.String("library", cfg.Library.Path),
	)

	repo, closeRepo, err := openRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	a.close = closeRepo
	a.service = service.NewGameService(repo, validation.NewValidator(cfg.Validation), cfg, log)
	return nil
}

func (a *app) shutdown() error {
	var err error
	if a.close != nil {
		err = a.close()
		a.close = nil
	}
	if a.log != nil {
		// fsync on a terminal stderr returns EINVAL
		_ = a.log.Sync()
	}
	return err
}

// openRepository builds the game library named by the configuration.
func openRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (domain.GameRepository, func() error, error) {
	switch cfg.Library.Driver {
	case config.DriverSQLite:
		db, err := database.NewSQLXSQLiteDB(cfg.Library.Path)
		if err != nil {
			return nil, nil, domain.NewStorageError("failed to open library "+cfg.Library.Path, err)
		}
		if _, err := database.RunMigrations(ctx, db, log); err != nil {
			db.Close()
			return nil, nil, domain.NewStorageError("failed to migrate library "+cfg.Library.Path, err)
		}
		return repository.NewGameDatabaseAdapter(db), db.Close, nil
	default:
		format, err := dto.ParseFormat(cfg.Library.Format)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewGameFileAdapter(cfg.Library.Path, format), func() error { return nil }, nil
	}
}

// seededRand returns nil unless --seed was given, so the service falls back
// to a non-deterministic source.
func seededRand(cmd *cobra.Command, seed uint64) domain.Shuffler {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	return domain.NewRand(seed)
}
