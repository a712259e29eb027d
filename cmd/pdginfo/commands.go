package main

import (
	"github.com/spf13/cobra"

	"github.com/pganoti/O2Physics/pkg/pdg"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every particle with its code and mass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			particles := pdg.Particles()
			opts.logger.Debug("listing particles", "count", len(particles))
			return writeParticles(cmd.OutOrStdout(), particles, opts.json)
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|code>...",
		Short: "Show particles by name (D0, kD0) or PDG code (421)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := make([]pdg.Particle, 0, len(args))
			for _, query := range args {
				p, err := pdg.Resolve(query)
				if err != nil {
					opts.logger.Error("lookup failed", "query", query, "error", err)
					return err
				}
				opts.logger.Debug("resolved particle", "query", query, "name", p.Name, "code", int(p.Code))
				found = append(found, p)
			}
			return writeParticles(cmd.OutOrStdout(), found, opts.json)
		},
	}
}
