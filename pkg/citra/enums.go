package citra

import (
	"fmt"
	"slices"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Task statuses.
const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCanceled  TaskStatus = "Canceled"
	TaskStatusScheduled TaskStatus = "Scheduled"
	TaskStatusSucceeded TaskStatus = "Succeeded"
	TaskStatusFailed    TaskStatus = "Failed"
)

// TaskStatuses lists every valid task status.
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusCanceled,
	TaskStatusScheduled,
	TaskStatusSucceeded,
	TaskStatusFailed,
}

// String returns the wire value.
func (s TaskStatus) String() string { return string(s) }

// MarshalText implements encoding.TextMarshaler.
func (s TaskStatus) MarshalText() ([]byte, error) {
	return marshalEnum(s, TaskStatuses, ErrInvalidTaskStatus)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TaskStatus) UnmarshalText(text []byte) error {
	return unmarshalEnum(s, text, TaskStatuses, ErrInvalidTaskStatus)
}

// ParseTaskStatus converts a wire value into a TaskStatus.
func ParseTaskStatus(value string) (TaskStatus, error) {
	var status TaskStatus

	err := status.UnmarshalText([]byte(value))

	return status, err
}

// SensorFrame is the reference frame of a sensor position.
type SensorFrame string

// Sensor frames.
const (
	SensorFrameTEME  SensorFrame = "TEME"
	SensorFrameJ2000 SensorFrame = "J2000"
)

// SensorFrames lists every valid sensor frame.
var SensorFrames = []SensorFrame{SensorFrameTEME, SensorFrameJ2000}

// String returns the wire value.
func (f SensorFrame) String() string { return string(f) }

// MarshalText implements encoding.TextMarshaler.
func (f SensorFrame) MarshalText() ([]byte, error) {
	return marshalEnum(f, SensorFrames, ErrInvalidSensorFrame)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *SensorFrame) UnmarshalText(text []byte) error {
	return unmarshalEnum(f, text, SensorFrames, ErrInvalidSensorFrame)
}

// AlertType is the event an alert subscription fires on.
type AlertType string

// Alert types.
const (
	AlertTypeManeuver      AlertType = "maneuver"
	AlertTypeCloseApproach AlertType = "closeapproach"
	AlertTypeDecay         AlertType = "decay"
	AlertTypeLaunch        AlertType = "launch"
	AlertTypeObservation   AlertType = "observation"
)

// AlertTypes lists every valid alert type.
var AlertTypes = []AlertType{
	AlertTypeManeuver,
	AlertTypeCloseApproach,
	AlertTypeDecay,
	AlertTypeLaunch,
	AlertTypeObservation,
}

// String returns the wire value.
func (a AlertType) String() string { return string(a) }

// MarshalText implements encoding.TextMarshaler.
func (a AlertType) MarshalText() ([]byte, error) {
	return marshalEnum(a, AlertTypes, ErrInvalidAlertType)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AlertType) UnmarshalText(text []byte) error {
	return unmarshalEnum(a, text, AlertTypes, ErrInvalidAlertType)
}

// TargetType is what an alert subscription watches.
type TargetType string

// Target types.
const (
	TargetTypeSatellite      TargetType = "satellite"
	TargetTypeSatelliteGroup TargetType = "satellitegroup"
)

// TargetTypes lists every valid target type.
var TargetTypes = []TargetType{TargetTypeSatellite, TargetTypeSatelliteGroup}

// String returns the wire value.
func (t TargetType) String() string { return string(t) }

// MarshalText implements encoding.TextMarshaler.
func (t TargetType) MarshalText() ([]byte, error) {
	return marshalEnum(t, TargetTypes, ErrInvalidTargetType)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TargetType) UnmarshalText(text []byte) error {
	return unmarshalEnum(t, text, TargetTypes, ErrInvalidTargetType)
}

// CollectionRequestType is the kind of collection being requested.
type CollectionRequestType string

// Collection request types.
const (
	CollectionRequestTypeTrack CollectionRequestType = "TRACK"
	CollectionRequestTypeTDOA  CollectionRequestType = "TDOA"
)

// CollectionRequestTypes lists every valid collection request type.
var CollectionRequestTypes = []CollectionRequestType{CollectionRequestTypeTrack, CollectionRequestTypeTDOA}

// String returns the wire value.
func (c CollectionRequestType) String() string { return string(c) }

// MarshalText implements encoding.TextMarshaler.
func (c CollectionRequestType) MarshalText() ([]byte, error) {
	return marshalEnum(c, CollectionRequestTypes, ErrInvalidRequestType)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CollectionRequestType) UnmarshalText(text []byte) error {
	return unmarshalEnum(c, text, CollectionRequestTypes, ErrInvalidRequestType)
}

func marshalEnum[T ~string](value T, valid []T, sentinel error) ([]byte, error) {
	if !slices.Contains(valid, value) {
		return nil, fmt.Errorf("%w: %q", sentinel, string(value))
	}

	return []byte(value), nil
}

func unmarshalEnum[T ~string](dst *T, text []byte, valid []T, sentinel error) error {
	value := T(text)
	if !slices.Contains(valid, value) {
		return fmt.Errorf("%w: %q", sentinel, string(text))
	}

	*dst = value

	return nil
}
