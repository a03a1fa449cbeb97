package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tritdataset/trits/tritset"
)

func newNotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "not SET",
		Short: "Negate every trit of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.parseSet(args[0])
			if err != nil {
				return err
			}
			return a.report(cmd, "not", set.Not())
		},
	}
}

func newAndCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "and SET SET...",
		Short: "Kleene AND of two or more sets, folded left",
		Long: `Kleene AND of two or more sets, folded left. Where one set is shorter,
its missing trits are Unknown, so only False survives past its end.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fold(cmd, "and", args, (*tritset.Set).And)
		},
	}
}

func newOrCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "or SET SET...",
		Short: "Kleene OR of two or more sets, folded left",
		Long: `Kleene OR of two or more sets, folded left. Where one set is shorter,
its missing trits are Unknown, so only True survives past its end.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fold(cmd, "or", args, (*tritset.Set).Or)
		},
	}
}

func newTrimCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trim FROM SET",
		Short: "Reset every trit at or after FROM to Unknown",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil || from < 0 {
				return fmt.Errorf("invalid FROM %q; expected: a non-negative integer", args[0])
			}
			set, err := a.parseSet(args[1])
			if err != nil {
				return err
			}
			return a.report(cmd, "trim", set.Trim(from))
		},
	}
}

func (a *app) fold(cmd *cobra.Command, op string, args []string, combine func(*tritset.Set, *tritset.Set) *tritset.Set) error {
	sets, err := a.parseSets(args)
	if err != nil {
		return err
	}
	res := sets[0]
	for _, set := range sets[1:] {
		res = combine(res, set)
	}
	return a.report(cmd, op, res)
}

func (a *app) report(cmd *cobra.Command, op string, res *tritset.Set) error {
	if a.cfg.Shrink {
		res.Shrink()
	}
	a.logger.Debug("evaluated",
		zap.String("op", op),
		zap.Int("size", res.Size()),
		zap.Int("capacity", res.Capacity()),
	)
	return render(cmd.OutOrStdout(), a.cfg.Output, []stat{newStat(res)}, true)
}
