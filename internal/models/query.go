package models

import (
	"fmt"
	"slices"
	"strings"
)

type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterContacted
	FilterUncontacted
)

func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "everyone", "none":
		return FilterAll, nil
	case "contacted":
		return FilterContacted, nil
	case "uncontacted":
		return FilterUncontacted, nil
	}
	return FilterAll, fmt.Errorf("unknown filter mode %q", s)
}

func (m FilterMode) String() string {
	switch m {
	case FilterContacted:
		return "contacted"
	case FilterUncontacted:
		return "uncontacted"
	default:
		return "all"
	}
}

// Title is the heading shown above a list filtered with m.
func (m FilterMode) Title() string {
	switch m {
	case FilterContacted:
		return "Contacted people"
	case FilterUncontacted:
		return "Uncontacted people"
	default:
		return "Everyone"
	}
}

type SortMode int

const (
	SortNone SortMode = iota
	SortByName
	SortByDate
)

func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "name", "byname":
		return SortByName, nil
	case "date", "bydate":
		return SortByDate, nil
	}
	return SortNone, fmt.Errorf("unknown sort mode %q", s)
}

func (m SortMode) String() string {
	switch m {
	case SortByName:
		return "name"
	case SortByDate:
		return "date"
	default:
		return "none"
	}
}

// Filter returns a new slice holding the records of people that match mode, in their original order.
func Filter(people []Prospect, mode FilterMode) []Prospect {
	out := make([]Prospect, 0, len(people))
	for _, p := range people {
		switch mode {
		case FilterContacted:
			if !p.IsContacted {
				continue
			}
		case FilterUncontacted:
			if p.IsContacted {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Sort returns a sorted copy of people. Names compare byte-wise, so ordering is case-sensitive.
func Sort(people []Prospect, mode SortMode) []Prospect {
	out := slices.Clone(people)
	if out == nil {
		out = []Prospect{}
	}
	switch mode {
	case SortByName:
		slices.SortStableFunc(out, func(a, b Prospect) int {
			return strings.Compare(a.Name, b.Name)
		})
	case SortByDate:
		slices.SortStableFunc(out, func(a, b Prospect) int {
			return a.CreateDate.Compare(b.CreateDate)
		})
	}
	return out
}

// Arrange is the display order: sort applied to the filtered list.
func Arrange(people []Prospect, filter FilterMode, sort SortMode) []Prospect {
	return Sort(Filter(people, filter), sort)
}
