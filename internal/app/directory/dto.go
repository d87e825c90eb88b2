package directory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	dom "userdir/internal/domain/user"
)

const (
	indicatorAscending  = "▲"
	indicatorDescending = "▼"
)

type UserDto struct {
	Id        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

type SortDto struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"direction"`
}

// Column describes one sortable table header.
type Column struct {
	Key       SortKey `json:"key"`
	Label     string  `json:"label"`
	Active    bool    `json:"active"`
	Indicator string  `json:"indicator,omitempty"`
}

// Snapshot is everything needed to render a view at one point in time.
type Snapshot struct {
	ID         string    `json:"id"`
	Loading    bool      `json:"loading"`
	Search     string    `json:"search"`
	Sort       SortDto   `json:"sort"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
	TotalUsers int       `json:"totalUsers"`
	HasPrev    bool      `json:"hasPrev"`
	HasNext    bool      `json:"hasNext"`
	Columns    []Column  `json:"columns"`
	Users      []UserDto `json:"users"`
}

// ColumnCount is the number of table columns, avatar included.
func (s Snapshot) ColumnCount() int {
	return len(s.Columns) + 1
}

// columnLabels turns "first_name" into "First Name".
var columnLabels = func() map[SortKey]string {
	title := cases.Title(language.English)
	labels := make(map[SortKey]string, len(SortKeys))
	for _, k := range SortKeys {
		labels[k] = title.String(strings.ReplaceAll(string(k), "_", " "))
	}
	return labels
}()

func ColumnLabel(key SortKey) string {
	return columnLabels[key]
}

func columnsFor(cfg SortConfig) []Column {
	cols := make([]Column, 0, len(SortKeys))
	for _, k := range SortKeys {
		col := Column{Key: k, Label: columnLabels[k]}
		if k == cfg.Key {
			col.Active = true
			col.Indicator = indicatorAscending
			if cfg.Direction == Descending {
				col.Indicator = indicatorDescending
			}
		}
		cols = append(cols, col)
	}
	return cols
}

func toDTO(u dom.User) UserDto {
	return UserDto{
		Id:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Avatar:    u.Avatar,
	}
}

func toDTOs(list []dom.User) []UserDto {
	res := make([]UserDto, 0, len(list))
	for _, u := range list {
		res = append(res, toDTO(u))
	}
	return res
}
