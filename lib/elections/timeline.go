package elections

import (
	"sort"
	"strings"
)

// DistrictTimeline is the chronologically ordered sequence of contests
// for a single district, the unit incumbency is derived over.
type DistrictTimeline struct {
	District  string
	Summaries []*ElectionSummary
}

// BuildTimelines partitions summaries by exact district string and
// orders each timeline by date, keeping retrieval order for same-day
// contests. The result is deterministic for identical input, with
// timelines ordered by district name.
func BuildTimelines(summaries []*ElectionSummary) []DistrictTimeline {
	groups := map[string][]*ElectionSummary{}
	for _, s := range summaries {
		groups[s.District] = append(groups[s.District], s)
	}

	districts := make([]string, 0, len(groups))
	for district := range groups {
		districts = append(districts, district)
	}
	sort.Strings(districts)

	timelines := make([]DistrictTimeline, 0, len(districts))
	for _, district := range districts {
		group := groups[district]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})
		timelines = append(timelines, DistrictTimeline{
			District:  district,
			Summaries: group,
		})
	}
	return timelines
}

// SortSummaries orders a flat result set by (date, district)
// ascending, the order of the final output table.
func SortSummaries(summaries []*ElectionSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].Date.Equal(summaries[j].Date) {
			return summaries[i].Date.Before(summaries[j].Date)
		}
		return strings.Compare(summaries[i].District, summaries[j].District) < 0
	})
}
