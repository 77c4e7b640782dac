package fields

import (
	"sort"

	"contactdesk/internal/domain"
)

// Sort orders contacts in place by the named field. The sort is stable, so
// entries with equal keys keep their input order; callers must treat the
// slice as reordered, not copied. Descending is the exact reversal of the
// ascending comparator.
func Sort(contacts []*domain.Contact, field string, ascending bool) error {
	binding, err := Resolve(field)
	if err != nil {
		return err
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		cmp := binding.Compare(contacts[i], contacts[j])
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})

	return nil
}
