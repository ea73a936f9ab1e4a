package dto

import (
	"fmt"
	"time"

	"worktrack/internal/domains/todo/model"
	"worktrack/shared/constant"
	"worktrack/shared/failure"
)

// ParseDate accepts the wire forms for a calendar date: plain YYYY-MM-DD or
// a full RFC 3339 timestamp, whose date part is kept. Anything else fails
// with a bad-request failure so a broken date can never reach the store.
func ParseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(constant.DateFormat, value); err == nil {
		return parsed, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)) //nolint:wrapcheck
	}

	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders a stored date in the wire format.
func FormatDate(value time.Time) string {
	return value.Format(constant.DateFormat)
}

type CreateTodoRequest struct {
	Text    string `json:"text" validate:"required,max=255"`
	Done    bool   `json:"done"`
	Date    string `json:"date" validate:"required,datestr"`
	EndDate string `json:"endDate" validate:"required,datestr"`
}

// ToModel parses the date strings and shapes the record to insert. Done
// defaults to false when the client omitted it, courtesy of the zero value.
func (c *CreateTodoRequest) ToModel() (model.Todo, error) {
	date, err := ParseDate(c.Date)
	if err != nil {
		return model.Todo{}, err
	}

	endDate, err := ParseDate(c.EndDate)
	if err != nil {
		return model.Todo{}, err
	}

	return model.Todo{
		Text:    c.Text,
		Done:    c.Done,
		Date:    date,
		EndDate: endDate,
	}, nil
}

// UpdateTodoRequest carries a partial field set: only fields present in the
// payload are applied. It backs both the full-update and partial-update
// verbs; the two differ only in the caller's intent, not in behavior.
type UpdateTodoRequest struct {
	Text    *string `json:"text" validate:"omitempty,max=255"`
	Done    *bool   `json:"done"`
	Date    *string `json:"date" validate:"omitempty,datestr"`
	EndDate *string `json:"endDate" validate:"omitempty,datestr"`
}

// IsEmpty reports whether no field was present in the payload.
func (u *UpdateTodoRequest) IsEmpty() bool {
	return u.Text == nil && u.Done == nil && u.Date == nil && u.EndDate == nil
}

// Fields maps the present fields to their columns for the merge update.
func (u *UpdateTodoRequest) Fields() (map[string]any, error) {
	fields := map[string]any{}

	if u.Text != nil {
		fields[model.FieldText] = *u.Text
	}

	if u.Done != nil {
		fields[model.FieldDone] = *u.Done
	}

	if u.Date != nil {
		date, err := ParseDate(*u.Date)
		if err != nil {
			return nil, err
		}

		fields[model.FieldDate] = date
	}

	if u.EndDate != nil {
		endDate, err := ParseDate(*u.EndDate)
		if err != nil {
			return nil, err
		}

		fields[model.FieldEndDate] = endDate
	}

	return fields, nil
}

type TodoResponse struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	Date    string `json:"date"`
	EndDate string `json:"endDate"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Text = model.Text
	r.Done = model.Done
	r.Date = FormatDate(model.Date)
	r.EndDate = FormatDate(model.EndDate)
}

// TodoListFromModels shapes the full, unfiltered collection response.
func TodoListFromModels(models []model.Todo) []TodoResponse {
	todos := make([]TodoResponse, len(models))
	for i, mod := range models {
		todos[i].FromModel(mod)
	}

	return todos
}
