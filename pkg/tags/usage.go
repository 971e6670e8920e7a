package tags

import (
	"sort"

	"github.com/wayfarer/wayfarer-cli/pkg/models"
)

// TagUsage pairs a tag name with how many trips carry it.
type TagUsage struct {
	Name  string
	Count int
}

// UsageFromTrips counts tag usage across the saved trips, normalized
// case-insensitively, sorted by count descending then name.
func UsageFromTrips(trips []models.TripRecord) []TagUsage {
	counts := make(map[string]int)
	display := make(map[string]string)
	for _, trip := range trips {
		for _, tag := range trip.Tags {
			key := models.NormalizeTagName(tag)
			if key == "" {
				continue
			}
			counts[key]++
			if _, seen := display[key]; !seen {
				display[key] = tag
			}
		}
	}

	usage := make([]TagUsage, 0, len(counts))
	for key, count := range counts {
		usage = append(usage, TagUsage{Name: display[key], Count: count})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Count != usage[j].Count {
			return usage[i].Count > usage[j].Count
		}
		return usage[i].Name < usage[j].Name
	})
	return usage
}

// SyncFromTrips registers any tag seen on a trip that the registry does
// not know yet, so colors stay stable once assigned.
func SyncFromTrips(r *Registry, trips []models.TripRecord) error {
	for _, trip := range trips {
		for _, tag := range trip.Tags {
			if _, ok := r.GetTag(tag); ok {
				continue
			}
			if err := r.AddTag(models.Tag{Name: tag}); err != nil {
				// Invalid names on old records are skipped, not fatal.
				continue
			}
		}
	}
	return r.Save()
}

// HasTag reports whether the trip carries the tag (case-insensitive).
func HasTag(trip *models.TripRecord, tag string) bool {
	want := models.NormalizeTagName(tag)
	for _, t := range trip.Tags {
		if models.NormalizeTagName(t) == want {
			return true
		}
	}
	return false
}
