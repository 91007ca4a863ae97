package events

const (
	EventTypeGroupPermissionsChanged = "access.group_permissions_changed"
	EventTypeEmployeeGroupsChanged   = "employee.groups_changed"
	EventTypeEmployeeCreated         = "employee.created"
)

// GroupPermissionsChangedEvent is raised when a group is edited, deleted or has grants added or removed.
type GroupPermissionsChangedEvent struct {
	BaseEvent
	GroupID int64 `json:"group_id"`
}

func NewGroupPermissionsChangedEvent(groupID int64) *GroupPermissionsChangedEvent {
	return &GroupPermissionsChangedEvent{
		BaseEvent: NewBaseEvent(EventTypeGroupPermissionsChanged, map[string]interface{}{
			"group_id": groupID,
		}),
		GroupID: groupID,
	}
}

type EmployeeGroupsChangedEvent struct {
	BaseEvent
	EmployeeID string `json:"employee_id"`
}

func NewEmployeeGroupsChangedEvent(employeeID string) *EmployeeGroupsChangedEvent {
	return &EmployeeGroupsChangedEvent{
		BaseEvent: NewBaseEvent(EventTypeEmployeeGroupsChanged, map[string]interface{}{
			"employee_id": employeeID,
		}),
		EmployeeID: employeeID,
	}
}

type EmployeeCreatedEvent struct {
	BaseEvent
	EmployeeID string `json:"employee_id"`
	Username   string `json:"username"`
}

func NewEmployeeCreatedEvent(employeeID, username string) *EmployeeCreatedEvent {
	return &EmployeeCreatedEvent{
		BaseEvent: NewBaseEvent(EventTypeEmployeeCreated, map[string]interface{}{
			"employee_id": employeeID,
			"username":    username,
		}),
		EmployeeID: employeeID,
		Username:   username,
	}
}
