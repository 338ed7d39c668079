//go:build unit

package worker_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"smart-parking/internal/worker"
	usecasemock "smart-parking/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweep_ReleasesExpired(t *testing.T) {
	cmds := &usecasemock.MockReservationCommandUseCase{}
	sweeper := worker.NewSweeper(cmds, testLogger())

	cmds.On("ReleaseExpired", mock.Anything).Return(3, nil).Once()

	sweeper.Sweep(context.Background())

	cmds.AssertExpectations(t)
}

func TestSweep_SurvivesTickFailure(t *testing.T) {
	cmds := &usecasemock.MockReservationCommandUseCase{}
	sweeper := worker.NewSweeper(cmds, testLogger())

	cmds.On("ReleaseExpired", mock.Anything).Return(0, assert.AnError).Once()
	// A failed tick must not panic; the next tick proceeds normally.
	sweeper.Sweep(context.Background())

	cmds.On("ReleaseExpired", mock.Anything).Return(0, nil).Once()
	sweeper.Sweep(context.Background())

	cmds.AssertExpectations(t)
}
