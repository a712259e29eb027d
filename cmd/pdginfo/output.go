package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pganoti/O2Physics/pkg/pdg"
)

func writeParticles(w io.Writer, particles []pdg.Particle, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(particles)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCODE\tMASS (GeV/c²)")
	for _, p := range particles {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", p.Name, int(p.Code), strconv.FormatFloat(p.Mass, 'g', -1, 64))
	}
	return tw.Flush()
}
