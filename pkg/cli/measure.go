package cli

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/mchmarny/qfair/pkg/data"
	"github.com/mchmarny/qfair/pkg/fairness"
	"github.com/mchmarny/qfair/pkg/report"
	"github.com/pkg/errors"
	urfave "github.com/urfave/cli/v3"
)

var (
	scoreFileFlag = &urfave.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "Path to the YAML or JSON score file",
		Required: true,
	}

	groupFlag = &urfave.StringFlag{
		Name:     "group",
		Aliases:  []string{"g"},
		Usage:    "Name of the group in the score file",
		Required: true,
	}

	giniCmd = &urfave.Command{
		Name:      "gini",
		Aliases:   []string{"gc"},
		Usage:     "Gini coefficient of descriptive scores (e.g. one mean per group)",
		ArgsUsage: "<score> <score> [score...]",
		Action:    cmdGini,
	}

	lwmCmd = &urfave.Command{
		Name:   "lwm",
		Usage:  "Low-Weighted-Mean score of one group against all groups in the score file",
		Action: cmdLowWeightedMean,
		Flags: []urfave.Flag{
			scoreFileFlag,
			groupFlag,
		},
	}

	mdgCmd = &urfave.Command{
		Name:   "mdg",
		Usage:  "Mean-Discard-Gap of all groups in the score file (integer scores only)",
		Action: cmdMeanDiscardGap,
		Flags: []urfave.Flag{
			scoreFileFlag,
		},
	}

	reportCmd = &urfave.Command{
		Name:   "report",
		Usage:  "Per-group summary and all fairness measures for the score file",
		Action: cmdReport,
		Flags: []urfave.Flag{
			scoreFileFlag,
		},
	}

	configCmd = &urfave.Command{
		Name:   "config",
		Usage:  "Print the active configuration",
		Action: cmdConfig,
	}
)

type giniResult struct {
	Scores         []float64 `json:"scores" yaml:"scores"`
	report.Measure `yaml:",inline"`
}

type lwmResult struct {
	Group      string  `json:"group" yaml:"group"`
	UpperLimit int     `json:"upper_limit" yaml:"upper_limit"`
	LWM        float64 `json:"lwm" yaml:"lwm"`
}

type mdgResult struct {
	Groups         []string `json:"groups" yaml:"groups"`
	report.Measure `yaml:",inline"`
}

func cmdGini(_ context.Context, cmd *urfave.Command) error {
	args := cmd.Args().Slice()
	scores := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid score: %s", a)
		}
		scores[i] = v
	}

	gc, err := fairness.GiniCoefficient(scores)
	if err != nil {
		return err
	}
	csqfr := fairness.CSQFR(gc)

	return printResult(cmd, &giniResult{
		Scores:  scores,
		Measure: report.Measure{Value: gc, SQFR: fairness.SQFR(gc), CSQFR: &csqfr},
	})
}

func cmdLowWeightedMean(_ context.Context, cmd *urfave.Command) error {
	cfg, err := getConfig(cmd)
	if err != nil {
		return err
	}

	groups, err := data.LoadGroups(cmd.String(scoreFileFlag.Name))
	if err != nil {
		return err
	}

	name := cmd.String(groupFlag.Name)
	g, err := data.Find(groups, name)
	if err != nil {
		return err
	}

	all, err := fairness.Concat(data.Distributions(groups)...)
	if err != nil {
		return err
	}
	union, err := all.IntValues()
	if err != nil {
		return errors.Wrap(err, "low-weighted mean requires integer scores")
	}
	scores, err := g.Scores.IntValues()
	if err != nil {
		return errors.Wrapf(err, "group %s", name)
	}

	scale := cfg.Config.Scale()
	lwm, err := scale.LowWeightedMean(scores, union)
	if err != nil {
		return errors.Wrapf(err, "group %s", name)
	}

	slog.Debug("lwm computed", "group", name, "lwm", lwm)
	return printResult(cmd, &lwmResult{Group: name, UpperLimit: scale.UpperLimit, LWM: lwm})
}

func cmdMeanDiscardGap(_ context.Context, cmd *urfave.Command) error {
	groups, err := data.LoadGroups(cmd.String(scoreFileFlag.Name))
	if err != nil {
		return err
	}

	mdg, err := fairness.MeanDiscardGap(data.Distributions(groups))
	if err != nil {
		return err
	}

	return printResult(cmd, &mdgResult{
		Groups:  data.Names(groups),
		Measure: report.Measure{Value: mdg, SQFR: fairness.SQFR(mdg)},
	})
}

func cmdReport(ctx context.Context, cmd *urfave.Command) error {
	cfg, err := getConfig(cmd)
	if err != nil {
		return err
	}

	groups, err := data.LoadGroups(cmd.String(scoreFileFlag.Name))
	if err != nil {
		return err
	}

	r, err := report.Build(ctx, groups, cfg.Config.Scale())
	if err != nil {
		return err
	}
	return printResult(cmd, r)
}

func cmdConfig(_ context.Context, cmd *urfave.Command) error {
	cfg, err := getConfig(cmd)
	if err != nil {
		return err
	}
	return printResult(cmd, cfg.Config)
}
