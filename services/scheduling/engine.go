package scheduling

import (
	"time"

	"meetsync/models"
	"meetsync/utils"

	"go.uber.org/zap"
)

// Engine turns a scheduling request plus participants' busy data into
// ranked candidate slots. Implementations must be pure per call: no I/O and
// no state carried between calls beyond what the caller re-supplies as
// PreviousSlots.
type Engine interface {
	Propose(req models.SchedulingRequest, busy []models.BusyPeriod) (models.ScheduleResult, error)
}

// DefaultEngine is the production proposal engine. Now is injectable so
// identical inputs always yield identical outputs under test; it defaults
// to time.Now.
type DefaultEngine struct {
	Logger *zap.Logger
	Now    func() time.Time
}

func (e *DefaultEngine) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return utils.GetLogger()
}

func (e *DefaultEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Propose resolves availability and walks the escalation tiers. It returns a
// ValidationError for structurally invalid input; zero results is reported
// through the result status, never as an error.
func (e *DefaultEngine) Propose(req models.SchedulingRequest, busy []models.BusyPeriod) (models.ScheduleResult, error) {
	logger := e.logger()

	cm, err := resolveConstraints(req)
	if err != nil {
		return models.ScheduleResult{}, err
	}

	now := e.now().UTC()
	horizonEnd := now.Add(cm.horizon)
	searchFrom := paginationFloor(cm.previous, now, cm.grid)
	if !searchFrom.Before(horizonEnd) {
		return assemble(nil, cm.requested), nil
	}

	busySet := NewBusyPeriodSet(busy, logger)
	free := subtractBusy(models.TimeInterval{Start: searchFrom, End: horizonEnd}, busySet.Union())

	g := newGenerator(cm, free, searchFrom, horizonEnd)
	result := assemble(g.generate(), cm.requested)

	logger.Debug("Proposal run finished",
		zap.Int("requested", cm.requested),
		zap.Int("returned", len(result.Slots)),
		zap.String("status", result.Status),
		zap.Int("busyPeriods", len(busy)))

	return result, nil
}
