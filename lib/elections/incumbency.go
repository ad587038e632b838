package elections

const (
	StatusDemIncumbent = "Dem incumbent"
	StatusGopIncumbent = "GOP incumbent"
	StatusNoIncumbent  = "No incumbent"
)

// ResolveIncumbency walks one district timeline and derives the
// incumbency fields for every summary except the earliest, which has
// no predecessor to derive them from. The incumbent is whoever won the
// immediately preceding contest in the same district, regardless of
// how many years separate the two.
func ResolveIncumbency(timeline DistrictTimeline) {
	for i := 1; i < len(timeline.Summaries); i++ {
		cur := timeline.Summaries[i]
		prev := timeline.Summaries[i-1]

		cur.Incumbent = prev.Winner
		cur.PrevParty = prev.WinningParty
		cur.IncumbentParty = incumbentParty(cur)

		open := !hasCandidateNamed(cur.Candidates, cur.Incumbent)
		cur.OpenRace = &open

		cur.IncumbentStatus = incumbentStatus(cur.IncumbentParty)
	}
}

// An incumbent who ran under a different ballot line, or who did not
// re-file, has no matching candidate here and resolves to no party.
// That makes IncumbentStatus report "No incumbent" for a person who
// nominally still holds the seat (seen on elections 131567 and
// 131541); this mirrors the source data's own accounting and is kept
// as-is.
func incumbentParty(s *ElectionSummary) string {
	if s.Incumbent == "" {
		return ""
	}
	for _, c := range s.Candidates {
		if c.DisplayName == s.Incumbent {
			return c.Party
		}
	}
	return ""
}

func hasCandidateNamed(candidates []CandidateRecord, name string) bool {
	for _, c := range candidates {
		if c.DisplayName == name {
			return true
		}
	}
	return false
}

func incumbentStatus(party string) string {
	switch party {
	case PartyDemocratic:
		return StatusDemIncumbent
	case PartyRepublican:
		return StatusGopIncumbent
	}
	return StatusNoIncumbent
}
