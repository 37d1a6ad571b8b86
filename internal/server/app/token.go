package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/iudanet/fieldsync/internal/config"
	"github.com/iudanet/fieldsync/internal/server/jwt"
	"github.com/iudanet/fieldsync/internal/server/storage/sqlite"
)

func (r *root) tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage device tokens",
	}

	var device string
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a bearer token for a device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withStore(cmd, func(ctx context.Context, cfg *config.Server, store *sqlite.Storage, _ *slog.Logger) error {
				if cfg.Auth.JWTSecret == "" {
					return ErrAuthDisabled
				}
				issuer := jwt.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, store, nil)
				token, record, err := issuer.Issue(ctx, device)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "✓ Token issued for %s (ID: %s, expires %s)\n",
					record.Device, record.ID, record.ExpiresAt.Local().Format(time.DateTime))
				_, _ = fmt.Fprintln(out, token)
				return nil
			})
		},
	}
	issue.Flags().StringVar(&device, "device", "", "Device name")
	_ = issue.MarkFlagRequired("device")

	revoke := &cobra.Command{
		Use:   "revoke <id>",
		Short: "Revoke a device token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withStore(cmd, func(ctx context.Context, _ *config.Server, store *sqlite.Storage, _ *slog.Logger) error {
				if err := store.RevokeToken(ctx, args[0], time.Now().UTC()); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Token %s revoked\n", args[0])
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List device tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withStore(cmd, func(ctx context.Context, _ *config.Server, store *sqlite.Storage, _ *slog.Logger) error {
				tokens, err := store.ListTokens(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(tokens) == 0 {
					_, _ = fmt.Fprintln(out, "No device tokens issued.")
					return nil
				}

				table := tablewriter.NewWriter(out)
				table.Header("ID", "Device", "Issued", "Expires", "Revoked")
				for _, t := range tokens {
					revoked := "-"
					if t.RevokedAt != nil {
						revoked = t.RevokedAt.Local().Format(time.DateTime)
					}
					if err := table.Append([]string{
						t.ID,
						t.Device,
						t.CreatedAt.Local().Format(time.DateTime),
						t.ExpiresAt.Local().Format(time.DateTime),
						revoked,
					}); err != nil {
						return err
					}
				}
				return table.Render()
			})
		},
	}

	prune := &cobra.Command{
		Use:   "prune",
		Short: "Delete expired device tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withStore(cmd, func(ctx context.Context, _ *config.Server, store *sqlite.Storage, _ *slog.Logger) error {
				n, err := store.DeleteExpiredTokens(ctx, time.Now().UTC())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %d expired tokens\n", n)
				return nil
			})
		},
	}

	cmd.AddCommand(issue, revoke, list, prune)
	return cmd
}
