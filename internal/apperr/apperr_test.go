package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, KindValidation, KindOf(Validation("bad input")))
	require.Equal(t, KindUnauthorized, KindOf(Unauthorized("nope")))
	require.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	require.Equal(t, KindConflict, KindOf(Conflict("taken")))
	require.Equal(t, KindPersistence, KindOf(Persistence("db down", errors.New("conn refused"))))
	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	require.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("missing"))
	require.Equal(t, KindNotFound, KindOf(err))
}

func TestInsufficientStockDetails(t *testing.T) {
	err := InsufficientStock(2, 5)
	require.Equal(t, KindInsufficientStock, KindOf(err))

	details := DetailsOf(err)
	require.Equal(t, int64(2), details["available"])
	require.Equal(t, int64(5), details["requested"])
	require.Contains(t, err.Error(), "available 2")
	require.Contains(t, err.Error(), "requested 5")
}

func TestPersistenceUnwraps(t *testing.T) {
	cause := errors.New("conn refused")
	err := Persistence("db down", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "db down")
	require.Contains(t, err.Error(), "conn refused")
}
