package directory

import (
	"errors"

	domcommon "userdir/internal/domain/common"
)

var (
	// ErrUnknownSortKey is returned for a column that cannot be sorted.
	ErrUnknownSortKey = errors.New("unknown sort key")
	// ErrRegistryClosed is returned by Mount during shutdown.
	ErrRegistryClosed = errors.New("directory registry closed")
)

func IsNotFound(err error) bool {
	return domcommon.IsNotFound(err)
}

func NewViewNotFoundError(id string) error {
	return domcommon.NewNotFound("view", id)
}
