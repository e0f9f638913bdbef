package model

import "gorm.io/gorm"

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionImport Action = "import"
)

// Activity records one mutation the console pushed to the API successfully.
type Activity struct {
	gorm.Model
	Entity    string `json:"entity" gorm:"index"`
	EntityID  string `json:"entity_id"`
	CafeID    string `json:"cafe_id" gorm:"index"`
	Action    Action `json:"action"`
	Summary   string `json:"summary"`
	RequestID string `json:"request_id"`
}
