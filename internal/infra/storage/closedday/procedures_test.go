package closedday

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcedureError_KeepsServerMessageVerbatim(t *testing.T) {
	driverErr := &pq.Error{
		Code:    "P0001",
		Message: "취소할 수 없는 예약이 포함되어 있습니다. (요청 2건, 취소 가능 1건)",
		Detail:  "appointment 7 is completed",
	}

	perr := newProcedureError(ProcApplySingle, fmt.Errorf("query: %w", driverErr))

	assert.Equal(t, "취소할 수 없는 예약이 포함되어 있습니다. (요청 2건, 취소 가능 1건)", perr.Error())
	assert.Equal(t, "P0001", perr.Code)
	assert.Equal(t, ProcApplySingle, perr.Procedure)

	var target *pq.Error
	assert.True(t, errors.As(perr, &target))
}

func TestNewProcedureError_TransportFailure(t *testing.T) {
	perr := newProcedureError(ProcRemoveRange, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	assert.Equal(t, "dial tcp 10.0.0.1:5432: connection refused", perr.Error())
	assert.Empty(t, perr.Code)
}

func TestDriverMessage(t *testing.T) {
	wrapped := fmt.Errorf("closed_date: CountInRange - scan count: %w", &pq.Error{
		Code:    "42501",
		Message: "permission denied for table salon_closed_dates",
	})
	assert.Equal(t, "permission denied for table salon_closed_dates", DriverMessage(wrapped))
	assert.Equal(t, "connection refused", DriverMessage(errors.New("connection refused")))
}

func TestDecodeResult(t *testing.T) {
	res, err := decodeResult(ProcApplyBatch, []byte(`{"applied_days": 4, "cancelled_count": 0}`))
	require.NoError(t, err)
	require.NotNil(t, res.AppliedDays)
	require.NotNil(t, res.CancelledCount)
	assert.Equal(t, 4, *res.AppliedDays)
	assert.Equal(t, 0, *res.CancelledCount)
	assert.Nil(t, res.RemovedDays)

	empty, err := decodeResult(ProcApplyBatch, nil)
	require.NoError(t, err)
	assert.Nil(t, empty.AppliedDays)

	_, err = decodeResult(ProcApplyBatch, []byte(`not json`))
	assert.ErrorIs(t, err, ErrDecodeResult)
}
