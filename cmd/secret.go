package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/propcast/internal/adapters/secrets/ref"
	"github.com/spf13/cobra"
)

func newSecretCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage credentials referenced as secret:<key>",
	}

	cmd.AddCommand(newSecretSetCmd(app), newSecretRemoveCmd(app))

	return cmd
}

func newSecretSetCmd(app *app) *cobra.Command {
	var key string
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a credential in pass, or in a private file when pass is unavailable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if value == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("secret value is required: pass --value or pipe it on stdin")
				}
				value = strings.TrimSpace(line)
			}
			if value == "" {
				return errors.New("secret value is empty")
			}

			if err := app.secretStore.Put(cmd.Context(), key, value); err != nil {
				return fmt.Errorf("store secret %q: %w", key, err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored %s; reference it as %s:%s\n", key, ref.SchemeSecret, key)
			return err
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Secret key, for example neynar/api_key")
	cmd.Flags().StringVar(&value, "value", "", "Secret value (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newSecretRemoveCmd(app *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove"},
		Short:   "Remove a stored credential",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("remove secret %q: %w", key, err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Secret key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
