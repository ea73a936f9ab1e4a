package model

import "time"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID      = "id"
	FieldText    = "text"
	FieldDone    = "done"
	FieldDate    = "date"
	FieldEndDate = "end_date"
)

// Todo is the sole persisted entity: one task with a text label, a
// completion flag and a start/end date range. The id is store-assigned and
// immutable. No ordering exists between Date and EndDate at this layer.
type Todo struct {
	ID      int64     `db:"id"`
	Text    string    `db:"text"`
	Done    bool      `db:"done"`
	Date    time.Time `db:"date"`
	EndDate time.Time `db:"end_date"`
}
