// Package query builds filter predicates over in-memory contact collections
// using the field registry. Matching is deliberately permissive: substring,
// case-insensitive, AND across criteria. This is an interactive lookup tool,
// not a filter language.
package query

import (
	"fmt"
	"strings"

	"contactdesk/internal/domain"
	"contactdesk/internal/fields"
)

func matches(binding *fields.Binding, c *domain.Contact, value string) bool {
	extracted := binding.Extract(c)
	if binding.Exact {
		return extracted == strings.TrimSpace(value)
	}
	return strings.Contains(strings.ToLower(extracted), strings.ToLower(value))
}

// SingleField returns every contact whose field contains value as a
// case-insensitive substring (exact match for the identity field). An
// unknown field name is a distinct error, never a silent empty result.
func SingleField(contacts []*domain.Contact, field, value string) ([]*domain.Contact, error) {
	binding, err := fields.Resolve(field)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Contact, 0)
	for _, c := range contacts {
		if matches(binding, c, value) {
			result = append(result, c)
		}
	}
	return result, nil
}

// MultiField applies the logical AND of each criterion's single-field
// condition. Empty criteria are refused before any entity is touched.
func MultiField(contacts []*domain.Contact, criteria []domain.SearchCriterion) ([]*domain.Contact, error) {
	if len(criteria) == 0 {
		return nil, domain.ErrEmptyCriteria
	}

	resolved := make([]*fields.Binding, len(criteria))
	for i, criterion := range criteria {
		binding, err := fields.Resolve(criterion.Field)
		if err != nil {
			return nil, fmt.Errorf("%d. kriter: %w", i+1, err)
		}
		resolved[i] = binding
	}

	result := make([]*domain.Contact, 0)
	for _, c := range contacts {
		all := true
		for i, criterion := range criteria {
			if !matches(resolved[i], c, criterion.Value) {
				all = false
				break
			}
		}
		if all {
			result = append(result, c)
		}
	}
	return result, nil
}
