// Package entities contains core business entities.
package entities

// Team is a root aggregate users link into.
// InviteUUID is assigned once at creation and is never regenerated; it is the
// only identifier shared outside the system.
type Team struct {
	ID          int64
	Name        string
	Description string
	InviteUUID  string
}
