package store

import "github.com/pawsitive-rescue/volunteer-match/pkg/core/model"

// SoftDeletable is implemented by records carrying a deleted marker
type SoftDeletable interface {
	model.Event | model.Assignment | model.Notification
}

// deleted reports the soft-delete marker of a record
func deleted[T SoftDeletable](record T) bool {
	switch r := any(record).(type) {
	case model.Event:
		return r.Deleted
	case model.Assignment:
		return r.Deleted
	case model.Notification:
		return r.Deleted
	}
	return false
}

// Active filters out soft-deleted records. The in-process backends share
// this instead of each reimplementing the deleted-flag filter.
func Active[T SoftDeletable](records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !deleted(r) {
			out = append(out, r)
		}
	}
	return out
}
