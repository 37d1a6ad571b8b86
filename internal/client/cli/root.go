package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/fieldsync/internal/config"
	"github.com/iudanet/fieldsync/internal/models"
)

// skipBootstrap помечает команды, которым не нужны база и конфигурация
const skipBootstrap = "fieldsync/skip-bootstrap"

// OpenFunc собирает Cli из конфигурации. Возвращаемая функция освобождает ресурсы.
type OpenFunc func(ctx context.Context, cfg *config.Client) (*Cli, func() error, error)

// Options параметры корневой команды
type Options struct {
	Version   string
	Commit    string
	BuildDate string
	Open      OpenFunc
	Viper     *viper.Viper // nil - новый экземпляр config.NewViper
}

type root struct {
	opts    Options
	v       *viper.Viper
	app     *Cli
	closeFn func() error
	cfgFile string
}

// NewRootCommand создает дерево команд fieldsync
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Viper == nil {
		opts.Viper = config.NewViper()
	}
	r := &root{opts: opts, v: opts.Viper}

	cmd := &cobra.Command{
		Use:   "fieldsync",
		Short: "Field service client with live sync to the portal",
		Long: `fieldsync keeps service tickets and users on the device and
synchronizes them with the portal in the background.`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: r.bootstrap,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&r.cfgFile, "config", "", "Path to YAML config file")
	flags.String("db", "", "Path to local database")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("portal", "", "Portal URL used when none is saved on the device")
	mustBind(r.v, "db.path", cmd, "db")
	mustBind(r.v, "log.level", cmd, "log-level")
	mustBind(r.v, "portal.url", cmd, "portal")

	cmd.AddCommand(
		r.portalCmd(),
		r.testConnectionCmd(),
		r.syncCmd(),
		r.statusCmd(),
		r.loginCmd(),
		r.logoutCmd(),
		r.userCmd(),
		r.ticketCmd(),
		r.templatesCmd(),
		r.backupCmd(),
		r.workdayCmd(),
		r.runCmd(),
		r.versionCmd(),
	)
	return cmd
}

func mustBind(v *viper.Viper, key string, cmd *cobra.Command, flag string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

func (r *root) bootstrap(cmd *cobra.Command, _ []string) error {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipBootstrap] == "true" {
			return nil
		}
	}
	if r.opts.Open == nil {
		return errors.New("client bootstrap is not configured")
	}

	cfg, err := config.LoadClient(r.v, r.cfgFile)
	if err != nil {
		return err
	}
	app, closeFn, err := r.opts.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	r.app, r.closeFn = app, closeFn
	return nil
}

func (r *root) close() error {
	if r.closeFn == nil {
		return nil
	}
	err := r.closeFn()
	r.closeFn = nil
	return err
}

// action оборачивает метод Cli в RunE и освобождает ресурсы после выполнения
func (r *root) action(fn func(ctx context.Context, c *Cli, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if r.app == nil {
			return errors.New("client is not initialized")
		}
		defer func() {
			if cerr := r.close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		return fn(cmd.Context(), r.app, args)
	}
}

func (r *root) portalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portal",
		Short: "Manage the portal endpoint",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "set-url <url>",
			Short: "Save the portal URL for this device",
			Args:  cobra.ExactArgs(1),
			RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
				return c.runPortalSetURL(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the configured portal URL",
			Args:  cobra.NoArgs,
			RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runPortalShow(ctx)
			}),
		},
	)
	return cmd
}

func (r *root) testConnectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test-connection",
		Short: "Check that the portal is reachable",
		Args:  cobra.NoArgs,
		RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runTestConnection(ctx)
		}),
	}
}

func (r *root) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one synchronization cycle now",
		Args:  cobra.NoArgs,
		RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runSync(ctx)
		}),
	}
}

func (r *root) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session, portal and sync status",
		Args:  cobra.NoArgs,
		RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runStatus(ctx)
		}),
	}
}

func (r *root) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Log in as a synced user",
		Args:  cobra.MaximumNArgs(1),
		RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
			var username string
			if len(args) == 1 {
				username = args[0]
			}
			return c.runLogin(ctx, username)
		}),
	}
}

func (r *root) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the local session",
		Args:  cobra.NoArgs,
		RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runLogout(ctx)
		}),
	}
}

func (r *root) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var name, role string
	add := &cobra.Command{
		Use:   "add <username>",
		Short: "Create a user (super user only)",
		Args:  cobra.ExactArgs(1),
		RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
			return c.runUserAdd(ctx, args[0], name, models.Role(role))
		}),
	}
	add.Flags().StringVar(&name, "name", "", "Display name")
	add.Flags().StringVar(&role, "role", string(models.RoleTechnician), "Role (technician, super_user)")
	_ = add.MarkFlagRequired("name")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List users",
			Args:  cobra.NoArgs,
			RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runUserList(ctx)
			}),
		},
		add,
		&cobra.Command{
			Use:   "activate <username|id>",
			Short: "Activate a user (super user only)",
			Args:  cobra.ExactArgs(1),
			RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
				return c.runUserSetActive(ctx, args[0], true)
			}),
		},
		&cobra.Command{
			Use:   "deactivate <username|id>",
			Short: "Deactivate a user (super user only)",
			Args:  cobra.ExactArgs(1),
			RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
				return c.runUserSetActive(ctx, args[0], false)
			}),
		},
	)
	return cmd
}

func (r *root) ticketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ticket",
		Aliases: []string{"tickets"},
		Short:   "Work with service tickets",
	}

	var filter ticketFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List tickets",
		Args:  cobra.NoArgs,
		RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runTicketList(ctx, filter)
		}),
	}
	list.Flags().BoolVar(&filter.OpenOnly, "open", false, "Only tickets in progress")
	list.Flags().BoolVar(&filter.Mine, "mine", false, "Only my tickets")

	var location, notes string
	start := &cobra.Command{
		Use:   "start <device-code>",
		Short: "Open a ticket for a device",
		Args:  cobra.ExactArgs(1),
		RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
			return c.runTicketStart(ctx, args[0], location, notes)
		}),
	}
	start.Flags().StringVar(&location, "location", "", "Device location")
	start.Flags().StringVar(&notes, "notes", "", "Notes")

	var opDescription string
	op := &cobra.Command{
		Use:   "op <ticket-id> [operation]",
		Short: "Add a performed operation",
		Args:  cobra.RangeArgs(1, 2),
		RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
			var name string
			if len(args) == 2 {
				name = args[1]
			}
			return c.runTicketOperation(ctx, args[0], name, opDescription)
		}),
	}
	op.Flags().StringVar(&opDescription, "description", "", "Operation details")

	var quantity int
	part := &cobra.Command{
		Use:   "part <ticket-id> <name>",
		Short: "Add a used spare part",
		Args:  cobra.ExactArgs(2),
		RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
			return c.runTicketPart(ctx, args[0], args[1], quantity)
		}),
	}
	part.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity")

	var yes bool
	complete := &cobra.Command{
		Use:   "complete <ticket-id>",
		Short: "Complete a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
			return c.runTicketComplete(ctx, args[0], yes)
		}),
	}
	complete.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "show <ticket-id>",
			Short: "Show ticket details",
			Args:  cobra.ExactArgs(1),
			RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
				return c.runTicketShow(ctx, args[0])
			}),
		},
		start,
		op,
		part,
		&cobra.Command{
			Use:   "notes <ticket-id> <text>",
			Short: "Replace ticket notes",
			Args:  cobra.ExactArgs(2),
			RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
				return c.runTicketNotes(ctx, args[0], args[1])
			}),
		},
		complete,
	)
	return cmd
}

func (r *root) templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Operation and spare part templates",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "refresh",
			Short: "Download templates from the portal",
			Args:  cobra.NoArgs,
			RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runTemplatesRefresh(ctx)
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List cached templates",
			Args:  cobra.NoArgs,
			RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runTemplatesList(ctx)
			}),
		},
	)
	return cmd
}

func (r *root) backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Portal backups (super user only)",
	}

	var yes bool
	restore := &cobra.Command{
		Use:   "restore <filename>",
		Short: "Restore portal data from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: r.action(func(ctx context.Context, c *Cli, args []string) error {
			return c.runBackupRestore(ctx, args[0], yes)
		}),
	}
	restore.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List portal backups",
			Args:  cobra.NoArgs,
			RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runBackupList(ctx)
			}),
		},
		&cobra.Command{
			Use:   "create",
			Short: "Create a portal backup",
			Args:  cobra.NoArgs,
			RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runBackupCreate(ctx)
			}),
		},
		restore,
	)
	return cmd
}

func (r *root) workdayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workday",
		Short: "Open or close the workday",
	}

	var reason string
	open := &cobra.Command{
		Use:   "open",
		Short: "Open the workday",
		Args:  cobra.NoArgs,
		RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runWorkdayOpen(ctx, reason)
		}),
	}
	open.Flags().StringVar(&reason, "reason", "", "Reason")

	cmd.AddCommand(
		open,
		&cobra.Command{
			Use:   "close",
			Short: "Close the workday",
			Args:  cobra.NoArgs,
			RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runWorkdayClose(ctx)
			}),
		},
	)
	return cmd
}

func (r *root) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run live sync in the foreground until interrupted",
		Args:  cobra.NoArgs,
		RunE: r.action(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runDaemon(ctx)
		}),
	}
}

func (r *root) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipBootstrap: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fieldsync %s\n", r.opts.Version)
			fmt.Fprintf(out, "  commit: %s\n", r.opts.Commit)
			fmt.Fprintf(out, "  built:  %s\n", r.opts.BuildDate)
		},
	}
}
