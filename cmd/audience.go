package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/propcast/internal/domain"
	"github.com/spf13/cobra"
)

type audienceJSON struct {
	Usernames []string   `json:"usernames"`
	Batches   [][]string `json:"batches"`
}

func newAudienceCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "audience",
		Short: "Resolve token holders to Farcaster usernames and show the tag replies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.openSession(cmd, connectQuery, nil)
			if err != nil {
				return err
			}
			defer sess.Close()

			var usernames []string
			fetch := func(ctx context.Context, progress func(string)) error {
				sess.engine.OnProgress(engineProgress(progress))
				usernames = sess.engine.Audience(ctx)
				return ctx.Err()
			}

			if asJSON {
				err = fetch(cmd.Context(), func(string) {})
			} else {
				err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Resolving token holders...", fetch)
			}
			if err != nil {
				return err
			}

			batches := domain.PartitionTags(usernames, domain.TagBatchSize)
			if asJSON {
				out := audienceJSON{Usernames: usernames, Batches: make([][]string, 0, len(batches))}
				if out.Usernames == nil {
					out.Usernames = []string{}
				}
				for _, batch := range batches {
					out.Batches = append(out.Batches, []string(batch))
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			rendered, err := app.audienceRenderer(batches)
			if err != nil {
				return fmt.Errorf("render audience: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
