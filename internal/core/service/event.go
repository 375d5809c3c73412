package service

import (
	"github.com/bornholm/procuradoria/internal/core/model"
)

type EventKind string

const (
	// EventSnapshot is emitted each time the desk collection changes.
	EventSnapshot EventKind = "snapshot"
	// EventNotification carries a message to display to the users.
	EventNotification EventKind = "notification"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Event struct {
	ID      string       `json:"id"`
	Kind    EventKind    `json:"kind"`
	Version uint64       `json:"version"`
	Level   Level        `json:"level,omitempty"`
	Message string       `json:"message,omitempty"`
	TaskID  model.TaskID `json:"taskId,omitempty"`
}
