package scheduler

import (
	"testing"
	"time"

	"invoicesync/internal/usecase"
	"invoicesync/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
)

func TestScheduler_StartRunsImmediatePassWithStartupWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync := mocks.NewMockISyncUseCase(ctrl)
	done := make(chan struct{})

	sync.EXPECT().
		RunBackgroundSync(gomock.Any(), 30).
		Return(usecase.Stats{Total: 2, Synced: 2})
	sync.EXPECT().
		SyncRecentNotionEdits(gomock.Any(), startupSweepWindow).
		DoAndReturn(func(_ any, _ time.Duration) int {
			close(done)
			return 1
		})

	s := NewScheduler(sync, time.Hour, 30)
	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("startup pass did not run")
	}
}

func TestScheduler_TickerPassUsesPeriodicWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync := mocks.NewMockISyncUseCase(ctrl)
	done := make(chan struct{})

	// Startup pass.
	sync.EXPECT().RunBackgroundSync(gomock.Any(), 7).Return(usecase.Stats{})
	sync.EXPECT().SyncRecentNotionEdits(gomock.Any(), startupSweepWindow).Return(0)

	// First tick. Later ticks may fire before Stop wins the race.
	sync.EXPECT().RunBackgroundSync(gomock.Any(), 7).Return(usecase.Stats{}).MinTimes(1)
	sync.EXPECT().
		SyncRecentNotionEdits(gomock.Any(), periodicSweepWindow).
		DoAndReturn(func(_ any, _ time.Duration) int {
			select {
			case <-done:
			default:
				close(done)
			}
			return 0
		}).
		MinTimes(1)

	s := NewScheduler(sync, 10*time.Millisecond, 7)
	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker pass did not run")
	}
}

func TestScheduler_StopWaitsForLoopExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync := mocks.NewMockISyncUseCase(ctrl)
	sync.EXPECT().RunBackgroundSync(gomock.Any(), gomock.Any()).Return(usecase.Stats{}).AnyTimes()
	sync.EXPECT().SyncRecentNotionEdits(gomock.Any(), gomock.Any()).Return(0).AnyTimes()

	s := NewScheduler(sync, time.Hour, 30)
	s.Start()
	s.Stop()

	// Stop again must be a no-op, not a double close.
	s.Stop()
}

func TestScheduler_StartTwiceIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync := mocks.NewMockISyncUseCase(ctrl)
	sync.EXPECT().RunBackgroundSync(gomock.Any(), gomock.Any()).Return(usecase.Stats{}).AnyTimes()
	sync.EXPECT().SyncRecentNotionEdits(gomock.Any(), gomock.Any()).Return(0).AnyTimes()

	s := NewScheduler(sync, time.Hour, 30)
	s.Start()
	s.Start()
	s.Stop()
}
