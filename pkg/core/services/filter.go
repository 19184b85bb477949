package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

// FilterEvents returns the display-ordered subset of events: canceled
// events dropped, then a case-insensitive substring match on title, then
// a tag filter where the event must carry every requested tag (events
// with no tags are excluded by any non-empty filter), sorted newest
// first by numeric id. Pure and deterministic.
func FilterEvents(events []model.Event, search string, tagFilter []string) []model.Event {
	filtered := make([]model.Event, 0, len(events))
	for _, e := range events {
		if e.Canceled {
			continue
		}
		filtered = append(filtered, e)
	}

	if needle := strings.ToLower(strings.TrimSpace(search)); needle != "" {
		matched := filtered[:0]
		for _, e := range filtered {
			if strings.Contains(strings.ToLower(e.Title), needle) {
				matched = append(matched, e)
			}
		}
		filtered = matched
	}

	if len(tagFilter) > 0 {
		matched := filtered[:0]
		for _, e := range filtered {
			if hasAllTags(e.Tags, tagFilter) {
				matched = append(matched, e)
			}
		}
		filtered = matched
	}

	// Ids are millisecond-epoch strings, so numeric order is creation order
	sort.SliceStable(filtered, func(i, j int) bool {
		return numericID(filtered[i].ID) > numericID(filtered[j].ID)
	})

	return filtered
}

func hasAllTags(tags []string, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, t := range tags {
			if t == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func numericID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
