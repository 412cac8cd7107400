package dedupe

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Action classifies the fate of a single page.
type Action string

const (
	ActionKeep       Action = "keep"
	ActionSuperseded Action = "superseded"
)

// Decision records the outcome for one page. ReferenceIndex and Score are
// meaningful only for superseded pages: the page that absorbed this one and
// the containment score that justified the merge. ReferenceIndex is -1 for
// kept pages.
type Decision struct {
	PageIndex      int
	Action         Action
	ReferenceIndex int
	Score          float64
	Reason         string
}

// Collapse walks the ordered pages once and produces exactly one Decision
// per page. It carries the index of the most recent surviving page (the
// anchor). A page supersedes the anchor when the anchor's tokens are
// contained in it at or above threshold and it has at least as many tokens
// as the anchor. Because a superseding page inherits the anchor role, reveal
// chains of any length collapse down to their final, most complete page in
// O(N) comparisons.
//
// Page 0 starts as keep, the final anchor is always keep, and every page is
// compared against the current anchor exactly once. The pass is
// deterministic: same pages and threshold, same decisions.
func Collapse(pages []NormalizedPage, threshold float64) []Decision {
	if len(pages) == 0 {
		return nil
	}

	decisions := make([]Decision, len(pages))
	decisions[0] = Decision{
		PageIndex:      0,
		Action:         ActionKeep,
		ReferenceIndex: -1,
		Reason:         "first page",
	}

	anchor := 0
	for i := 1; i < len(pages); i++ {
		s := Containment(pages[anchor], pages[i])

		if s >= threshold && pages[i].TokenCount >= pages[anchor].TokenCount {
			decisions[anchor].Action = ActionSuperseded
			decisions[anchor].ReferenceIndex = i
			decisions[anchor].Score = s
			decisions[anchor].Reason = fmt.Sprintf("merged into page %d (overlap %.2f)", i+1, s)
			decisions[i] = Decision{
				PageIndex:      i,
				Action:         ActionKeep,
				ReferenceIndex: -1,
				Reason:         fmt.Sprintf("extends page %d (overlap %.2f)", anchor+1, s),
			}
			log.Debug().
				Int("page", anchor+1).
				Int("merged_into", i+1).
				Float64("overlap", s).
				Msg("page superseded by successor")
		} else {
			decisions[i] = Decision{
				PageIndex:      i,
				Action:         ActionKeep,
				ReferenceIndex: -1,
				Reason:         fmt.Sprintf("distinct from page %d (overlap %.2f)", anchor+1, s),
			}
		}
		anchor = i
	}

	return decisions
}
