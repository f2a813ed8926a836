package app

import (
	"github.com/zeusync/navsim/internal/core/navigation"
	"github.com/zeusync/navsim/internal/core/observability/log"
)

var _ navigation.Observer = (*StepLogger)(nil)

// StepLogger writes every navigation step as a debug record.
type StepLogger struct {
	logger log.Log
}

func NewStepLogger(logger log.Log) *StepLogger {
	return &StepLogger{logger: logger}
}

func (s *StepLogger) OnStep(step navigation.Step) {
	fields := []log.Field{
		log.Stringer("mode", step.Mode),
		log.Int("index", step.Index),
		log.Stringer("command", step.Instruction.Action),
		log.Int("magnitude", step.Instruction.Magnitude),
		log.Stringer("position", step.Position),
	}
	switch step.Mode {
	case navigation.ModeHeading:
		fields = append(fields, log.Int("heading", int(step.Heading)))
	case navigation.ModeWaypoint:
		fields = append(fields, log.Stringer("waypoint", step.Waypoint))
	}
	s.logger.Debug("step", fields...)
}
