package models

import "planner/internal/optional"

// Patch types carry partial updates. An unset field leaves the column
// untouched; an explicit JSON null clears a nullable column. Required
// columns reject null at the service layer.

type UserPatch struct {
	Name  optional.Field[string] `json:"name,omitzero"`
	Email optional.Field[string] `json:"email,omitzero"`
}

type ProjectPatch struct {
	Title optional.Field[string] `json:"title,omitzero"`
	Color optional.Field[string] `json:"color,omitzero"`
}

type TaskPatch struct {
	Title       optional.Field[string]    `json:"title,omitzero"`
	Description optional.Field[string]    `json:"description,omitzero"`
	DueDate     optional.Field[Date]      `json:"due_date,omitzero"`
	DueTime     optional.Field[TimeOfDay] `json:"due_time,omitzero"`
	Importance  optional.Field[int]       `json:"importance,omitzero"`
	ProjectID   optional.Field[int64]     `json:"project_id,omitzero"`
	Finished    optional.Field[bool]      `json:"finished,omitzero"`
}

type SubtaskPatch struct {
	Title        optional.Field[string] `json:"title,omitzero"`
	Description  optional.Field[string] `json:"description,omitzero"`
	DateFinished optional.Field[Date]   `json:"date_finished,omitzero"`
}

type NotePatch struct {
	Title       optional.Field[string] `json:"title,omitzero"`
	Description optional.Field[string] `json:"description,omitzero"`
}
