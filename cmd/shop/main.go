/*
Shop: an API gateway in front of the user, product and order services.

Every process of the system is a subcommand of this one binary.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shortlink-org/shop/config"
	"github.com/shortlink-org/shop/service"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "shop",
		Short: "API gateway and the user, product and order services",
	}

	for _, d := range descriptors() {
		root.AddCommand(newServiceCommand(d))
	}

	return root
}

func newServiceCommand(d service.Descriptor) *cobra.Command {
	cmd := &cobra.Command{
		Use:          d.Name,
		Short:        fmt.Sprintf("Run the %s service", d.Label),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.Flags().Int("port", d.Port, "listen port, overrides PORT")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, err := config.New(nil)
		if err != nil {
			return err
		}

		err = cfg.BindFlag("PORT", cmd.Flags().Lookup("port"))
		if err != nil {
			return err
		}

		app, err := service.New(ctx, d, cfg)
		if err != nil {
			return err
		}

		os.Exit(app.Run(ctx))

		return nil
	}

	return cmd
}
