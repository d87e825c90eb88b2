package directory

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	dom "userdir/internal/domain/user"
)

// SortKey names a sortable user field.
type SortKey string

const (
	SortByID        SortKey = "id"
	SortByFirstName SortKey = "first_name"
	SortByLastName  SortKey = "last_name"
	SortByEmail     SortKey = "email"
)

// SortKeys lists the sortable columns in display order.
var SortKeys = []SortKey{SortByID, SortByFirstName, SortByLastName, SortByEmail}

func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

type SortConfig struct {
	Key       SortKey
	Direction Direction
}

// DefaultSort is the configuration of a freshly mounted view.
var DefaultSort = SortConfig{Key: SortByID, Direction: Ascending}

// Next returns the configuration after the user asks to sort by key.
// Asking for the active key while ascending flips to descending; every
// other request starts over ascending.
func (c SortConfig) Next(key SortKey) SortConfig {
	if c.Key == key && c.Direction == Ascending {
		return SortConfig{Key: key, Direction: Descending}
	}
	return SortConfig{Key: key, Direction: Ascending}
}

// Filter keeps users whose first name, last name or email contains term,
// ignoring case. An empty term returns users unchanged.
func Filter(users []dom.User, term string) []dom.User {
	if term == "" {
		return users
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(term)

	out := make([]dom.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(lower.String(u.FirstName), needle) ||
			strings.Contains(lower.String(u.LastName), needle) ||
			strings.Contains(lower.String(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

// Sort returns a sorted copy of users. Ties keep their input order.
func Sort(users []dom.User, cfg SortConfig) []dom.User {
	out := slices.Clone(users)
	slices.SortStableFunc(out, func(a, b dom.User) int {
		c := compareBy(cfg.Key, a, b)
		if cfg.Direction == Descending {
			return -c
		}
		return c
	})
	return out
}

// compareBy defines the total order per key: ids numerically, text byte-wise.
func compareBy(key SortKey, a, b dom.User) int {
	switch key {
	case SortByFirstName:
		return strings.Compare(a.FirstName, b.FirstName)
	case SortByLastName:
		return strings.Compare(a.LastName, b.LastName)
	case SortByEmail:
		return strings.Compare(a.Email, b.Email)
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}

// Paginate returns the 1-based page of the given size. Pages outside the
// sequence are empty; page is never clamped.
func Paginate(users []dom.User, page, size int) []dom.User {
	if size <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(users) {
		return nil
	}
	end := min(start+size, len(users))
	return users[start:end]
}

// TotalPages is ceil(count/size), zero when there is nothing to show.
func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}
