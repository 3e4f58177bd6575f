package analytics

import (
	"stocklens/domain/inventory"
)

// FilterResult carries the retained series plus the count of hidden snapshots
// so callers can show "N hidden".
type FilterResult struct {
	Snapshots []inventory.Snapshot
	Removed   int
}

// FilterQuietHours removes snapshots whose local hour falls inside the
// half-open quiet interval [startHour, endHour), interpreted circularly
// (start=22, end=6 means hour >= 22 or hour < 6 is quiet). The snapshot
// marked IsCurrent is always retained regardless of its hour.
//
// The input is never mutated; with exclude=false it is returned unchanged.
func FilterQuietHours(snapshots []inventory.Snapshot, exclude bool, startHour, endHour int) FilterResult {
	if !exclude || len(snapshots) == 0 {
		return FilterResult{Snapshots: snapshots}
	}

	kept := make([]inventory.Snapshot, 0, len(snapshots))
	removed := 0
	for _, s := range snapshots {
		if s.IsCurrent || !inQuietWindow(s.Timestamp.Hour(), startHour, endHour) {
			kept = append(kept, s)
		} else {
			removed++
		}
	}
	return FilterResult{Snapshots: kept, Removed: removed}
}

// inQuietWindow tests hour against [start, end) on a circular 24h clock.
// start == end denotes an empty window: nothing is quiet.
func inQuietWindow(hour, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}
