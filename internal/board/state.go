package board

import (
	"errors"
	"fmt"
	"time"

	"worktrack/client"
	"worktrack/shared/constant"
)

// Form validation failures surfaced in the editor footer.
var (
	ErrTextRequired    = errors.New("text is required")
	ErrDateRequired    = errors.New("start date is required")
	ErrEndDateRequired = errors.New("end date is required")
	ErrDateBeforeToday = errors.New("date must not be before today")
)

// FormMode tells whether the editor is closed, creating, or editing.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
)

// Dispatch is the mutation the editor submit resolves to, picked by how
// many fields actually changed: none means no network call at all, one
// changed field goes out as a PATCH, more than one as a full PUT.
type Dispatch int

const (
	DispatchNone Dispatch = iota
	DispatchPatch
	DispatchPut
)

// Form is the editor state. For edits it keeps a snapshot of the record as
// it was when the editor opened, so submit can diff against it.
type Form struct {
	Mode     FormMode
	Original client.Todo

	Text    string
	Done    bool
	Date    string
	EndDate string
}

// NewCreateForm opens a blank editor with both dates prefilled to today.
func NewCreateForm(today time.Time) Form {
	day := today.Format(constant.DateFormat)

	return Form{
		Mode:    FormCreate,
		Date:    day,
		EndDate: day,
	}
}

// NewEditForm opens the editor over an existing record.
func NewEditForm(todo client.Todo) Form {
	return Form{
		Mode:     FormEdit,
		Original: todo,
		Text:     todo.Text,
		Done:     todo.Done,
		Date:     todo.Date,
		EndDate:  todo.EndDate,
	}
}

// Validate enforces the input rules: text present, both dates present and
// parsable, and no date moved to before today. An edit keeps its original
// past dates; the minimum only binds dates the user changed.
func (f Form) Validate(today time.Time) error {
	if f.Text == "" {
		return ErrTextRequired
	}

	if f.Date == "" {
		return ErrDateRequired
	}

	if f.EndDate == "" {
		return ErrEndDateRequired
	}

	floor := today.Truncate(24 * time.Hour)

	if err := f.validateDate(f.Date, f.Original.Date, floor); err != nil {
		return fmt.Errorf("start date: %w", err)
	}

	if err := f.validateDate(f.EndDate, f.Original.EndDate, floor); err != nil {
		return fmt.Errorf("end date: %w", err)
	}

	return nil
}

func (f Form) validateDate(value, original string, floor time.Time) error {
	day, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return err
	}

	if f.Mode == FormEdit && value == original {
		return nil
	}

	if day.Before(floor) {
		return ErrDateBeforeToday
	}

	return nil
}

// Diff compares the form against its snapshot and returns the patch naming
// only the changed fields, plus how many changed. A create form diffs
// against the zero record, which is fine because creates never dispatch
// through Diff.
func (f Form) Diff() (client.TodoPatch, int) {
	patch := client.TodoPatch{}
	changed := 0

	if f.Text != f.Original.Text {
		text := f.Text
		patch.Text = &text
		changed++
	}

	if f.Done != f.Original.Done {
		done := f.Done
		patch.Done = &done
		changed++
	}

	if f.Date != f.Original.Date {
		date := f.Date
		patch.Date = &date
		changed++
	}

	if f.EndDate != f.Original.EndDate {
		endDate := f.EndDate
		patch.EndDate = &endDate
		changed++
	}

	return patch, changed
}

// Dispatch resolves an edit submit into the mutation to send.
func (f Form) Dispatch() Dispatch {
	_, changed := f.Diff()

	switch {
	case changed == 0:
		return DispatchNone
	case changed == 1:
		return DispatchPatch
	default:
		return DispatchPut
	}
}

// Todo assembles the full record a PUT carries, keeping the original id.
func (f Form) Todo() client.Todo {
	return client.Todo{
		ID:      f.Original.ID,
		Text:    f.Text,
		Done:    f.Done,
		Date:    f.Date,
		EndDate: f.EndDate,
	}
}

// CreateForm assembles the payload a create submit posts.
func (f Form) CreateForm() client.TodoForm {
	return client.TodoForm{
		Text:    f.Text,
		Done:    f.Done,
		Date:    f.Date,
		EndDate: f.EndDate,
	}
}

// Partition splits the collection into the two board columns, preserving
// the server's ordering within each.
func Partition(todos []client.Todo) (inProgress, done []client.Todo) {
	for _, todo := range todos {
		if todo.Done {
			done = append(done, todo)
		} else {
			inProgress = append(inProgress, todo)
		}
	}

	return inProgress, done
}
