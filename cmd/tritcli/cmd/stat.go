package cmd

import (
	"fmt"
	"io"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tritdataset/trits/config"
	"github.com/tritdataset/trits/trit"
	"github.com/tritdataset/trits/tritset"
)

// tritsPerByte is how many trits of capacity one byte of storage holds.
const tritsPerByte = 4

type stat struct {
	Set      string `yaml:"set"`
	Size     int    `yaml:"size"`
	Capacity int    `yaml:"capacity"`
	Storage  string `yaml:"storage"`
	False    int    `yaml:"false"`
	Unknown  int    `yaml:"unknown"`
	True     int    `yaml:"true"`
}

func newStat(set *tritset.Set) stat {
	counts := set.Cardinalities()
	return stat{
		Set:      set.String(),
		Size:     set.Size(),
		Capacity: set.Capacity(),
		Storage:  bytefmt.ByteSize(uint64(set.Capacity() / tritsPerByte)),
		False:    counts[trit.False],
		Unknown:  counts[trit.Unknown],
		True:     counts[trit.True],
	}
}

func newStatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat SET...",
		Short: "Report size, capacity, storage and trit counts of sets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := a.parseSets(args)
			if err != nil {
				return err
			}
			stats := make([]stat, 0, len(sets))
			for _, set := range sets {
				if a.cfg.Shrink {
					set.Shrink()
				}
				stats = append(stats, newStat(set))
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, stats, false)
		},
	}
}

// render writes stats in the given format. In plain format, bare prints only
// the sets themselves.
func render(w io.Writer, format string, stats []stat, bare bool) error {
	switch format {
	case config.OutputTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"set", "size", "capacity", "storage", "F", "U", "T"})
		table.SetBorder(true)
		for _, s := range stats {
			table.Append([]string{
				s.Set,
				strconv.Itoa(s.Size),
				strconv.Itoa(s.Capacity),
				s.Storage,
				strconv.Itoa(s.False),
				strconv.Itoa(s.Unknown),
				strconv.Itoa(s.True),
			})
		}
		table.Render()
		return nil

	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(stats); err != nil {
			return fmt.Errorf("yaml encoding failure: %w", err)
		}
		return enc.Close()

	default:
		for _, s := range stats {
			var err error
			if bare {
				_, err = fmt.Fprintln(w, s.Set)
			} else {
				_, err = fmt.Fprintf(w, "%s size=%d capacity=%d storage=%s F=%d U=%d T=%d\n",
					s.Set, s.Size, s.Capacity, s.Storage, s.False, s.Unknown, s.True)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
}
