package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/propcast/internal/config"
	"github.com/bnema/propcast/internal/domain"
	"github.com/bnema/propcast/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var noTag bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Announce missed proposals, then announce new ones as they are created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			var override func(*config.Config)
			if noTag {
				override = func(cfg *config.Config) { cfg.Tagging = domain.TagModeDisabled }
			}

			sess, err := app.openSession(cmd, connectStream, override)
			if err != nil {
				return err
			}
			defer sess.Close()

			sess.logger.WithFields(logrus.Fields{
				"version": version.Version,
			}).Info("starting proposal announcer")

			if err := sess.engine.Run(ctx); err != nil {
				if ctx.Err() != nil && errors.Is(err, context.Canceled) {
					sess.logger.Info("interrupted")
					return nil
				}
				sess.logger.WithError(err).Error("announcer stopped")
				return err
			}

			sess.logger.WithField("count", sess.engine.ProposalCount()).Info("announcer stopped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&noTag, "no-tag", false, "Announce without tagging token holders")

	return cmd
}
