// Package app дерево команд fieldsync-portal.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/fieldsync/internal/config"
	"github.com/iudanet/fieldsync/internal/server/storage/sqlite"
)

// ErrAuthDisabled токены нельзя выпускать без секрета
var ErrAuthDisabled = errors.New("auth.jwt_secret is not set, device tokens are disabled")

// Options параметры корневой команды
type Options struct {
	Version   string
	Commit    string
	BuildDate string
	Viper     *viper.Viper // nil - новый экземпляр config.NewViper
	Fs        afero.Fs     // файловая система для резервных копий, nil - ОС
	LogOutput io.Writer    // nil - stderr команды
}

type root struct {
	opts    Options
	v       *viper.Viper
	cfgFile string
}

// NewRootCommand создает дерево команд портала
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Viper == nil {
		opts.Viper = config.NewViper()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	r := &root{opts: opts, v: opts.Viper}

	cmd := &cobra.Command{
		Use:               "fieldsync-portal",
		Short:             "Reference portal for fieldsync devices",
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&r.cfgFile, "config", "", "Path to YAML config file")
	flags.String("db", "", "Path to portal database")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	mustBind(r.v, "db.path", cmd, "db")
	mustBind(r.v, "log.level", cmd, "log-level")

	cmd.AddCommand(
		r.serveCmd(),
		r.tokenCmd(),
		r.versionCmd(),
	)
	return cmd
}

func mustBind(v *viper.Viper, key string, cmd *cobra.Command, flag string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

// load читает конфигурацию и создает логгер
func (r *root) load(cmd *cobra.Command) (*config.Server, *slog.Logger, error) {
	cfg, err := config.LoadServer(r.v, r.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	out := r.opts.LogOutput
	if out == nil {
		out = cmd.ErrOrStderr()
	}
	logger, err := config.NewLogger(cfg.Log, out)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// withStore открывает базу портала на время fn
func (r *root) withStore(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Server, store *sqlite.Storage, logger *slog.Logger) error) (err error) {
	cfg, logger, err := r.load(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	store, err := sqlite.New(ctx, cfg.DB.Path, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(ctx, cfg, store, logger)
}

func (r *root) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "fieldsync-portal %s\n", r.opts.Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", r.opts.Commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", r.opts.BuildDate)
		},
	}
}
