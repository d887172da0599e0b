// Package report composes the fairness measures into a single summary of a
// set of demographic groups.
package report

import (
	"context"
	"log/slog"

	"github.com/mchmarny/qfair/pkg/data"
	"github.com/mchmarny/qfair/pkg/fairness"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const minGroups = 2

// GroupSummary holds the descriptive statistics of one group.
type GroupSummary struct {
	Name   string  `json:"name" yaml:"name"`
	Size   int     `json:"size" yaml:"size"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	LWM    float64 `json:"lwm" yaml:"lwm"`
}

// Measure is a raw lower-is-better measure with its fairness ratios.
type Measure struct {
	Value float64  `json:"value" yaml:"value"`
	SQFR  float64  `json:"sqfr" yaml:"sqfr"`
	CSQFR *float64 `json:"csqfr,omitempty" yaml:"csqfr,omitempty"`
}

// Report is the fairness summary of a group set.
type Report struct {
	UpperLimit int             `json:"upper_limit" yaml:"upper_limit"`
	Groups     []*GroupSummary `json:"groups" yaml:"groups"`
	GiniMean   *Measure        `json:"gini_mean" yaml:"gini_mean"`
	GiniMedian *Measure        `json:"gini_median" yaml:"gini_median"`
	GiniLWM    *Measure        `json:"gini_lwm" yaml:"gini_lwm"`
	MDG        *Measure        `json:"mdg" yaml:"mdg"`
}

// Build computes the report for groups on the given scale. LWM scores are
// computed concurrently, one goroutine per group.
func Build(ctx context.Context, groups []*data.Group, scale fairness.Scale) (*Report, error) {
	if len(groups) < minGroups {
		return nil, errors.Wrapf(fairness.ErrInvalidInput, "report needs at least %d groups, got %d", minGroups, len(groups))
	}
	if err := scale.Validate(); err != nil {
		return nil, err
	}

	all, err := fairness.Concat(data.Distributions(groups)...)
	if err != nil {
		return nil, errors.Wrap(err, "combining groups")
	}
	union, err := all.IntValues()
	if err != nil {
		return nil, errors.Wrap(err, "low-weighted mean")
	}

	r := &Report{
		UpperLimit: scale.UpperLimit,
		Groups:     make([]*GroupSummary, len(groups)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, grp := range groups {
		i, grp := i, grp
		g.Go(func() error {
			s, err := summarize(ctx, grp, union, scale)
			if err != nil {
				return errors.Wrapf(err, "group %s", grp.Name)
			}
			r.Groups[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	means := make([]float64, len(r.Groups))
	medians := make([]float64, len(r.Groups))
	lwms := make([]float64, len(r.Groups))
	for i, s := range r.Groups {
		means[i], medians[i], lwms[i] = s.Mean, s.Median, s.LWM
	}

	if r.GiniMean, err = gini(means); err != nil {
		return nil, errors.Wrap(err, "gini over means")
	}
	if r.GiniMedian, err = gini(medians); err != nil {
		return nil, errors.Wrap(err, "gini over medians")
	}
	if r.GiniLWM, err = gini(lwms); err != nil {
		return nil, errors.Wrap(err, "gini over low-weighted means")
	}

	mdg, err := fairness.MeanDiscardGap(data.Distributions(groups))
	if err != nil {
		return nil, errors.Wrap(err, "mean discard gap")
	}
	r.MDG = &Measure{Value: mdg, SQFR: fairness.SQFR(mdg)}

	slog.Debug("report built", "groups", len(groups), "gini_lwm", r.GiniLWM.Value, "mdg", mdg)
	return r, nil
}

func summarize(ctx context.Context, grp *data.Group, union []int, scale fairness.Scale) (*GroupSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := grp.Scores
	scores, err := d.IntValues()
	if err != nil {
		return nil, err
	}

	s := &GroupSummary{Name: grp.Name, Size: d.Len()}
	if s.Min, s.Max, err = d.MinMax(); err != nil {
		return nil, err
	}
	if s.Mean, err = d.Mean(); err != nil {
		return nil, err
	}
	if s.Median, err = d.Median(); err != nil {
		return nil, err
	}
	if s.LWM, err = scale.LowWeightedMean(scores, union); err != nil {
		return nil, err
	}

	slog.Debug("group summarized", "group", grp.Name, "mean", s.Mean, "lwm", s.LWM)
	return s, nil
}

func gini(x []float64) (*Measure, error) {
	gc, err := fairness.GiniCoefficient(x)
	if err != nil {
		return nil, err
	}
	csqfr := fairness.CSQFR(gc)
	return &Measure{Value: gc, SQFR: fairness.SQFR(gc), CSQFR: &csqfr}, nil
}
