package models

// Urgency defines the ordered urgency levels of an event
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// AssignmentStatus defines the lifecycle states of a volunteer assignment.
// New assignments always start as registered; the other states exist for
// status updates after the fact.
type AssignmentStatus string

const (
	AssignmentStatusRegistered AssignmentStatus = "registered"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
	AssignmentStatusCancelled  AssignmentStatus = "cancelled"
)

// IsValid checks if the Urgency is valid
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// Rank returns the position of the urgency in the low..critical ordering,
// for sorting event lists by severity.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyLow:
		return 0
	case UrgencyMedium:
		return 1
	case UrgencyHigh:
		return 2
	case UrgencyCritical:
		return 3
	}
	return -1
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusRegistered, AssignmentStatusCompleted, AssignmentStatusCancelled:
		return true
	}
	return false
}
