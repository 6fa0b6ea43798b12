package domain

import "time"

// ResourceType categorizes what is being booked
type ResourceType string

const (
	ResourceTypeSpace      ResourceType = "space"      // Rehearsal room, gallery, stage
	ResourceTypeInstructor ResourceType = "instructor" // Workshop/masterclass host
	ResourceTypeEquipment  ResourceType = "equipment"  // Kiln, press, projector
	ResourceTypeEvent      ResourceType = "event"      // One-off event with weekend availability
)

// Resource represents a bookable entity of an arts organization.
// Rules carries the full availability configuration for the resource.
type Resource struct {
	ID        int64
	OrgID     int64
	Name      string
	Type      ResourceType
	Rules     AvailabilityRules
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeekendsByDefault returns the default weekend policy for the resource type:
// event resources are bookable on weekends, everything else is not
func (t ResourceType) WeekendsByDefault() bool {
	return t == ResourceTypeEvent
}
