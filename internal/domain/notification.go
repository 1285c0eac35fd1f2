package domain

import "time"

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyInfo    NotificationKind = "info"
	NotifyError   NotificationKind = "error"
)

type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	Subject   string           `json:"subject,omitempty"` // entity id the message names
	SessionID string           `json:"sessionId,omitempty"`
	At        time.Time        `json:"at"`
}
