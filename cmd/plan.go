package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bnema/propcast/internal/application"
	"github.com/spf13/cobra"
)

type planProposalJSON struct {
	Number    uint64 `json:"number"`
	URL       string `json:"url"`
	Announced bool   `json:"announced"`
	TxHash    string `json:"tx_hash,omitempty"`
	Block     uint64 `json:"block,omitempty"`
}

type planJSON struct {
	Tagging    string             `json:"tagging"`
	Proposals  []planProposalJSON `json:"proposals"`
	Pending    []uint64           `json:"pending"`
	PostedURLs []string           `json:"posted_urls"`
}

func newPlanCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show which proposals are announced and which a run would post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.openSession(cmd, connectQuery, nil)
			if err != nil {
				return err
			}
			defer sess.Close()

			var plan application.Plan
			fetch := func(ctx context.Context, progress func(string)) error {
				sess.engine.OnProgress(engineProgress(progress))
				var err error
				plan, err = sess.engine.Plan(ctx)
				return err
			}

			if asJSON {
				err = fetch(cmd.Context(), func(string) {})
			} else {
				err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Reading proposals and feed...", fetch)
			}
			if err != nil {
				return err
			}

			return writePlanOutput(cmd, app, plan, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writePlanOutput(cmd *cobra.Command, app *app, plan application.Plan, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toPlanJSON(plan))
	}

	rendered, err := app.planRenderer(plan)
	if err != nil {
		return fmt.Errorf("render plan: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func toPlanJSON(plan application.Plan) planJSON {
	out := planJSON{
		Tagging:    string(plan.TagMode),
		Proposals:  make([]planProposalJSON, 0, len(plan.Proposals)),
		Pending:    make([]uint64, 0, len(plan.Pending)),
		PostedURLs: make([]string, 0, len(plan.Posted)),
	}
	if out.Tagging == "" {
		out.Tagging = "enabled"
	}

	for _, proposal := range plan.Proposals {
		out.Proposals = append(out.Proposals, planProposalJSON{
			Number:    uint64(proposal.Number),
			URL:       proposal.URL,
			Announced: plan.Announced(proposal),
			TxHash:    proposal.Ref.TxHash,
			Block:     proposal.Ref.BlockNumber,
		})
	}
	for _, proposal := range plan.Pending {
		out.Pending = append(out.Pending, uint64(proposal.Number))
	}
	for url := range plan.Posted {
		out.PostedURLs = append(out.PostedURLs, url)
	}
	sort.Strings(out.PostedURLs)

	return out
}
