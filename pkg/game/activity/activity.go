// Package activity hands region activities off to whatever runs them.
// The world never runs an activity itself; it only asks a Dispatcher to.
package activity

import (
	"errors"

	"go.uber.org/zap"
)

// ErrRejected is returned when a dispatcher declines to launch an activity.
var ErrRejected = errors.New("activity rejected")

// Request describes one activity launch.
type Request struct {
	WorldID    string
	Region     string
	Label      string
	ActivityID string
	Seed       int64
}

// Dispatcher launches activities for regions.
type Dispatcher interface {
	Launch(req Request) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(req Request) error

// Launch calls f(req)
func (f DispatcherFunc) Launch(req Request) error {
	return f(req)
}

// LogDispatcher accepts every request and logs it.
type LogDispatcher struct {
	log *zap.Logger
}

// NewLogDispatcher creates a dispatcher that only logs launches
func NewLogDispatcher(log *zap.Logger) *LogDispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogDispatcher{log: log}
}

// Launch logs the request and accepts it
func (d *LogDispatcher) Launch(req Request) error {
	d.log.Info("activity launched",
		zap.String("region", req.Region),
		zap.String("activity", req.ActivityID),
		zap.String("world", req.WorldID),
	)
	return nil
}
