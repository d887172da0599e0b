package data

import (
	"log/slog"
	"os"
	"strings"

	"github.com/mchmarny/qfair/pkg/fairness"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	tagInt   = "!!int"
	tagFloat = "!!float"
)

// Group is a named quality score distribution of one demographic group.
type Group struct {
	Name   string                `json:"name" yaml:"name"`
	Scores fairness.Distribution `json:"-" yaml:"-"`
}

type scoreFile struct {
	Groups []*groupEntry `yaml:"groups"`
}

type groupEntry struct {
	Name   string      `yaml:"name"`
	Scores []yaml.Node `yaml:"scores"`
}

// LoadGroups reads a YAML (or JSON) score file.
func LoadGroups(path string) ([]*Group, error) {
	if path == "" {
		return nil, errors.New("score file path required")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading score file: %s", path)
	}

	groups, err := ParseGroups(b)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing score file: %s", path)
	}

	slog.Debug("score file loaded", "path", path, "groups", len(groups))
	return groups, nil
}

// ParseGroups decodes score file content. A group whose scores are all
// integers gets an integer distribution, any other numeric content a
// floating point one.
func ParseGroups(b []byte) ([]*Group, error) {
	var f scoreFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal scores")
	}
	if len(f.Groups) == 0 {
		return nil, errors.New("no groups found")
	}

	seen := make(map[string]bool, len(f.Groups))
	list := make([]*Group, 0, len(f.Groups))
	for i, e := range f.Groups {
		if e == nil {
			return nil, errors.Errorf("group %d is empty", i)
		}
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, errors.Errorf("group %d has no name", i)
		}
		if seen[name] {
			return nil, errors.Errorf("duplicate group: %s", name)
		}
		seen[name] = true

		d, err := toDistribution(e.Scores)
		if err != nil {
			return nil, errors.Wrapf(err, "group %s", name)
		}
		list = append(list, &Group{Name: name, Scores: d})
	}
	return list, nil
}

func toDistribution(nodes []yaml.Node) (fairness.Distribution, error) {
	if len(nodes) == 0 {
		return fairness.Distribution{}, errors.New("no scores")
	}

	ints := make([]int, 0, len(nodes))
	floats := make([]float64, 0, len(nodes))
	allInts := true

	for i := range nodes {
		n := &nodes[i]
		if n.Kind != yaml.ScalarNode {
			return fairness.Distribution{}, errors.Errorf("score %d is not a scalar", i)
		}

		switch n.ShortTag() {
		case tagInt:
			var v int
			if err := n.Decode(&v); err != nil {
				return fairness.Distribution{}, errors.Wrapf(err, "score %d", i)
			}
			ints = append(ints, v)
			floats = append(floats, float64(v))
		case tagFloat:
			var v float64
			if err := n.Decode(&v); err != nil {
				return fairness.Distribution{}, errors.Wrapf(err, "score %d", i)
			}
			allInts = false
			floats = append(floats, v)
		default:
			return fairness.Distribution{}, errors.Errorf("score %d is not numeric: %q", i, n.Value)
		}
	}

	if allInts {
		return fairness.Ints(ints...), nil
	}
	return fairness.Floats(floats...), nil
}

// Names returns the group names in file order.
func Names(groups []*Group) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

// Find returns the group with the given name.
func Find(groups []*Group, name string) (*Group, error) {
	for _, g := range groups {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, errors.Errorf("group not found: %s", name)
}

// Distributions returns the distribution of every group in file order.
func Distributions(groups []*Group) []fairness.Distribution {
	list := make([]fairness.Distribution, len(groups))
	for i, g := range groups {
		list[i] = g.Scores
	}
	return list
}
