package directory

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "userdir/internal/domain/user"
)

func sampleUsers() []dom.User {
	return []dom.User{
		{ID: 4, FirstName: "Eve", LastName: "Holt", Email: "eve.holt@reqres.in", Avatar: "https://img/4.jpg"},
		{ID: 1, FirstName: "George", LastName: "Bluth", Email: "george.bluth@reqres.in", Avatar: "https://img/1.jpg"},
		{ID: 6, FirstName: "Tracey", LastName: "Ramos", Email: "tracey.ramos@reqres.in", Avatar: "https://img/6.jpg"},
		{ID: 2, FirstName: "Janet", LastName: "Weaver", Email: "janet.weaver@reqres.in", Avatar: "https://img/2.jpg"},
		{ID: 5, FirstName: "Charles", LastName: "Morris", Email: "charles.morris@reqres.in", Avatar: "https://img/5.jpg"},
		{ID: 3, FirstName: "Emma", LastName: "Wong", Email: "emma.wong@reqres.in", Avatar: "https://img/3.jpg"},
		{ID: 7, FirstName: "Émile", LastName: "Zola", Email: "EMILE@Example.org", Avatar: "https://img/7.jpg"},
	}
}

func ids(users []dom.User) []int64 {
	out := make([]int64, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestFilter_EmptyTermReturnsInput(t *testing.T) {
	users := sampleUsers()
	assert.Equal(t, users, Filter(users, ""))
}

func TestFilter_MatchesNameOrEmailCaseInsensitive(t *testing.T) {
	tests := []struct {
		term string
		want []int64
	}{
		{term: "em", want: []int64{3, 7}},
		{term: "EVE", want: []int64{4}},
		{term: "weaver", want: []int64{2}},
		{term: "reqres.in", want: []int64{4, 1, 6, 2, 5, 3}},
		{term: "example.ORG", want: []int64{7}},
		{term: "émile", want: []int64{7}},
		{term: "ÉMILE", want: []int64{7}},
		{term: "nobody", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(sampleUsers(), tt.term)))
		})
	}
}

func TestFilter_SubsetProperty(t *testing.T) {
	users := sampleUsers()
	for _, term := range []string{"a", "E", "ro", "bluth", "@", ".in", "zz"} {
		got := Filter(users, term)
		included := make(map[int64]bool, len(got))
		for _, u := range got {
			included[u.ID] = true
		}

		needle := strings.ToLower(term)
		for _, u := range users {
			matches := strings.Contains(strings.ToLower(u.FirstName), needle) ||
				strings.Contains(strings.ToLower(u.LastName), needle) ||
				strings.Contains(strings.ToLower(u.Email), needle)
			assert.Equal(t, matches, included[u.ID], "term %q user %d", term, u.ID)
		}
	}
}

func TestSort_AdjacentPairsOrdered(t *testing.T) {
	users := sampleUsers()
	for _, key := range SortKeys {
		for _, dir := range []Direction{Ascending, Descending} {
			cfg := SortConfig{Key: key, Direction: dir}
			t.Run(fmt.Sprintf("%s_%s", key, dir), func(t *testing.T) {
				got := Sort(users, cfg)
				require.Len(t, got, len(users))
				for i := 1; i < len(got); i++ {
					c := compareBy(key, got[i-1], got[i])
					if dir == Ascending {
						assert.LessOrEqual(t, c, 0)
					} else {
						assert.GreaterOrEqual(t, c, 0)
					}
				}
			})
		}
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	users := sampleUsers()
	before := ids(users)
	_ = Sort(users, SortConfig{Key: SortByFirstName, Direction: Descending})
	assert.Equal(t, before, ids(users))
}

func TestSort_ByIDIsNumeric(t *testing.T) {
	users := []dom.User{{ID: 10}, {ID: 9}, {ID: 100}, {ID: 1}}
	assert.Equal(t, []int64{1, 9, 10, 100}, ids(Sort(users, DefaultSort)))
	assert.Equal(t, []int64{100, 10, 9, 1}, ids(Sort(users, SortConfig{Key: SortByID, Direction: Descending})))
}

func TestSort_TiesKeepFilteredOrder(t *testing.T) {
	users := []dom.User{
		{ID: 3, LastName: "Same"},
		{ID: 1, LastName: "Same"},
		{ID: 2, LastName: "Alpha"},
	}
	assert.Equal(t, []int64{2, 3, 1}, ids(Sort(users, SortConfig{Key: SortByLastName, Direction: Ascending})))
}

func TestSortConfig_ToggleLaw(t *testing.T) {
	cfg := DefaultSort

	cfg = cfg.Next(SortByEmail)
	assert.Equal(t, SortConfig{Key: SortByEmail, Direction: Ascending}, cfg)

	cfg = cfg.Next(SortByEmail)
	assert.Equal(t, SortConfig{Key: SortByEmail, Direction: Descending}, cfg)

	cfg = cfg.Next(SortByEmail)
	assert.Equal(t, SortConfig{Key: SortByEmail, Direction: Ascending}, cfg)

	// different key while descending resets to ascending
	cfg = cfg.Next(SortByEmail).Next(SortByLastName)
	assert.Equal(t, SortConfig{Key: SortByLastName, Direction: Ascending}, cfg)
}

func TestSortConfig_DefaultThenSameKey(t *testing.T) {
	assert.Equal(t, SortConfig{Key: SortByID, Direction: Descending}, DefaultSort.Next(SortByID))
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys {
		got, err := ParseSortKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseSortKey("avatar")
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestPaginate_ConcatenationRebuildsSequence(t *testing.T) {
	for n := 0; n <= 7; n++ {
		users := Sort(sampleUsers()[:n], DefaultSort)
		total := TotalPages(len(users), 2)

		var rebuilt []dom.User
		for page := 1; page <= total; page++ {
			window := Paginate(users, page, 2)
			assert.NotEmpty(t, window)
			assert.LessOrEqual(t, len(window), 2)
			rebuilt = append(rebuilt, window...)
		}
		assert.Equal(t, ids(users), ids(rebuilt), "n=%d", n)
	}
}

func TestPaginate_OutOfRangeIsEmpty(t *testing.T) {
	users := sampleUsers()
	assert.Empty(t, Paginate(users, 0, 2))
	assert.Empty(t, Paginate(users, -1, 2))
	assert.Empty(t, Paginate(users, 5, 2))
	assert.Len(t, Paginate(users, 4, 2), 1)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 2, 0},
		{1, 2, 1},
		{2, 2, 1},
		{3, 2, 2},
		{12, 2, 6},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.size), "count=%d size=%d", tt.count, tt.size)
	}
}

func TestColumnLabel(t *testing.T) {
	assert.Equal(t, "Id", ColumnLabel(SortByID))
	assert.Equal(t, "First Name", ColumnLabel(SortByFirstName))
	assert.Equal(t, "Last Name", ColumnLabel(SortByLastName))
	assert.Equal(t, "Email", ColumnLabel(SortByEmail))
}
