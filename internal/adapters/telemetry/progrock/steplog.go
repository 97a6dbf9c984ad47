package progrock

import (
	"errors"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/packlink/internal/core/ports"
)

var _ progrock.Writer = (*StepLog)(nil)

// StepLog is a progrock.Writer that reports each completed vertex to the logger once.
type StepLog struct {
	logger ports.Logger

	mu       sync.Mutex
	reported map[string]struct{}
}

// NewStepLog creates a StepLog reporting to logger.
func NewStepLog(logger ports.Logger) *StepLog {
	return &StepLog{
		logger:   logger,
		reported: make(map[string]struct{}),
	}
}

// WriteStatus reports vertices that completed in update.
func (s *StepLog) WriteStatus(update *progrock.StatusUpdate) error {
	for _, v := range update.Vertexes {
		if v.Completed == nil || !s.markReported(v.Id) {
			continue
		}

		var elapsed time.Duration
		if v.Started != nil {
			elapsed = v.Completed.AsTime().Sub(v.Started.AsTime())
		}

		var err error
		if v.Error != nil {
			err = errors.New(*v.Error)
		}
		s.logger.Step(v.Name, elapsed, err)
	}
	return nil
}

// Close does nothing.
func (s *StepLog) Close() error {
	return nil
}

func (s *StepLog) markReported(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reported[id]; ok {
		return false
	}
	s.reported[id] = struct{}{}
	return true
}
