package model

import "time"

// DueDateLayout is the fixed client-facing format for due dates,
// e.g. "21/06/2021 15:20:17".
const DueDateLayout = "02/01/2006 15:04:05"

type Task struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Note         string     `json:"note"`
	CreationDate time.Time  `gorm:"not null" json:"creation_date"`
	DueDate      *time.Time `json:"due_date"`
	Completed    bool       `gorm:"not null;default:false" json:"completed"`
	UserID       uint       `gorm:"not null" json:"user_id"`
}

// AsMap returns every column of the task row, keyed by column name.
// A task without a due date serializes due_date as null.
func (t *Task) AsMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":            t.ID,
		"name":          t.Name,
		"note":          t.Note,
		"creation_date": t.CreationDate,
		"due_date":      nil,
		"completed":     t.Completed,
		"user_id":       t.UserID,
	}
	if t.DueDate != nil {
		m["due_date"] = *t.DueDate
	}
	return m
}
