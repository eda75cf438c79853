package greybus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beagleboard/gbridge/pkg/sdhc"
)

func TestResultFromErr(t *testing.T) {
	assert.Equal(t, ResultSuccess, ResultFromErr(nil))
	assert.Equal(t, ResultNoMemory, ResultFromErr(ErrNoMemory))
	assert.Equal(t, ResultTimeout, ResultFromErr(sdhc.ErrTimeout))
	assert.Equal(t, ResultRetry, ResultFromErr(sdhc.ErrBusy))
	assert.Equal(t, ResultInvalid, ResultFromErr(sdhc.ErrInvalid))
	assert.Equal(t, ResultProtocolBad, ResultFromErr(sdhc.ErrNotSupported))
	assert.Equal(t, ResultNonexistent, ResultFromErr(sdhc.ErrNoCard))
	assert.Equal(t, ResultNonexistent, ResultFromErr(sdhc.ErrNotReady))
	assert.Equal(t, ResultUnknownError, ResultFromErr(sdhc.ErrIO))
	assert.Equal(t, ResultUnknownError, ResultFromErr(fmt.Errorf("something else")))
}

func TestResultFromErrWrapped(t *testing.T) {
	err := fmt.Errorf("while doing a thing: %w", sdhc.ErrTimeout)
	assert.Equal(t, ResultTimeout, ResultFromErr(err))
}

func TestOperationAllocResponse(t *testing.T) {
	op := NewOperation(0x01, nil)
	assert.Nil(t, op.Response())

	buff, err := op.AllocResponse(16)
	assert.NoError(t, err)
	assert.Len(t, buff, 16)
	assert.Len(t, op.Response(), 16)

	_, err = op.AllocResponse(MaxPayloadSize + 1)
	assert.ErrorIs(t, err, ErrNoMemory)
}
