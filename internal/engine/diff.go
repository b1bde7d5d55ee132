package engine

import (
	"sort"

	"github.com/danieljhkim/workmux/internal/workspace"
)

// Diff compares the declarative config against a live snapshot. It is a
// pure function of its inputs: config groups are reported first in config
// order, then live-only groups in creation order.
//
// Within a group, items present on both sides are projected onto config
// positions and the longest strictly increasing subsequence of that
// projection marks the items whose relative order is unchanged ("stable").
// A naive set diff would flag every item of a reordered group as both
// removed and added; the LIS keeps genuinely unmoved items quiet and
// reports only the displaced ones.
func (e *Engine) Diff(cfg workspace.Config, live workspace.Live) *DiffReport {
	report := &DiffReport{}

	inConfig := make(map[string]bool, len(cfg.Groups))
	for _, g := range cfg.Groups {
		inConfig[g.Name] = true
		var liveGroup *workspace.Group
		lg, inLive := live.Lookup(g.Name)
		if inLive {
			liveGroup = &lg.Group
		}
		report.Groups = append(report.Groups, GroupDiff{
			Name:     g.Name,
			InConfig: true,
			InLive:   inLive,
			Items:    e.diffItems(g, liveGroup),
		})
	}

	for _, lg := range live.Groups {
		if inConfig[lg.Name] {
			continue
		}
		report.Groups = append(report.Groups, GroupDiff{
			Name:   lg.Name,
			InLive: true,
			Items:  e.diffItems(nil, &lg.Group),
		})
	}

	return report
}

// diffItems classifies one group's items. Either side may be nil (group
// missing from config or from live state).
func (e *Engine) diffItems(cfgGroup, liveGroup *workspace.Group) []ItemDiff {
	var cfgItems, liveItems []workspace.Item
	if cfgGroup != nil {
		cfgItems = cfgGroup.Items
	}
	if liveGroup != nil {
		liveItems = liveGroup.Items
	}

	posInConfig := make(map[string]int, len(cfgItems))
	for i, item := range cfgItems {
		posInConfig[item.Name] = i
	}
	livePath := make(map[string]string, len(liveItems))
	for _, item := range liveItems {
		livePath[item.Name] = item.Path
	}

	// Project live order onto config positions, common names only.
	positions := make([]int, 0, len(liveItems))
	names := make([]string, 0, len(liveItems))
	for _, item := range liveItems {
		if pos, ok := posInConfig[item.Name]; ok {
			positions = append(positions, pos)
			names = append(names, item.Name)
		}
	}

	stable := make(map[string]bool, len(positions))
	for _, idx := range longestIncreasing(positions) {
		stable[names[idx]] = true
	}

	var diffs []ItemDiff

	// Config-order pass: removals, path changes, unchanged.
	for _, item := range cfgItems {
		path, inLive := livePath[item.Name]
		switch {
		case !inLive:
			diffs = append(diffs, ItemDiff{Name: item.Name, Status: StatusRemoved, Path: item.Path})
		case !stable[item.Name]:
			// Relocated: the config-side instance is reported gone; the
			// live-order pass reports its new placement.
			diffs = append(diffs, ItemDiff{Name: item.Name, Status: StatusRemoved, Path: item.Path})
		case workspace.Comparable(item.Path, e.home) != workspace.Comparable(path, e.home):
			diffs = append(diffs, ItemDiff{Name: item.Name, Status: StatusPathChanged, Path: path, OldPath: item.Path})
		default:
			diffs = append(diffs, ItemDiff{Name: item.Name, Status: StatusUnchanged, Path: item.Path})
		}
	}

	// Live-order pass: additions, including the live half of a reorder.
	for _, item := range liveItems {
		if _, inConfig := posInConfig[item.Name]; !inConfig || !stable[item.Name] {
			diffs = append(diffs, ItemDiff{Name: item.Name, Status: StatusAdded, Path: item.Path})
		}
	}

	return diffs
}

// longestIncreasing returns the indices into seq of one longest strictly
// increasing subsequence (patience construction with parent links). Ties
// between equally long subsequences are resolved arbitrarily.
func longestIncreasing(seq []int) []int {
	if len(seq) == 0 {
		return nil
	}

	// tails[k] holds the index of the smallest tail value among increasing
	// subsequences of length k+1.
	tails := make([]int, 0, len(seq))
	parent := make([]int, len(seq))
	for i, v := range seq {
		k := sort.Search(len(tails), func(k int) bool { return seq[tails[k]] >= v })
		if k > 0 {
			parent[i] = tails[k-1]
		} else {
			parent[i] = -1
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}

	out := make([]int, len(tails))
	for i, j := len(tails)-1, tails[len(tails)-1]; i >= 0; i-- {
		out[i] = j
		j = parent[j]
	}
	return out
}
