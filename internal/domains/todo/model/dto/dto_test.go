package dto_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"worktrack/internal/domains/todo/model"
	"worktrack/internal/domains/todo/model/dto"
	"worktrack/shared/failure"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "plain calendar date",
			input: "2026-08-27",
			want:  time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC 3339 timestamp keeps the date part",
			input: "2026-08-27T15:04:05Z",
			want:  time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC 3339 with offset keeps the local date part",
			input: "2026-08-27T23:30:00+07:00",
			want:  time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "free-form text is rejected",
			input:   "tomorrow",
			wantErr: true,
		},
		{
			name:    "wrong separator is rejected",
			input:   "27/08/2026",
			wantErr: true,
		},
		{
			name:    "empty string is rejected",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.ParseDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "expected %v, got %v", tt.want, got)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-08-27", dto.FormatDate(time.Date(2026, 8, 27, 13, 45, 0, 0, time.UTC)))
}

func TestCreateTodoRequest_ToModel(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateTodoRequest
		want    model.Todo
		wantErr bool
	}{
		{
			name: "full payload",
			req: dto.CreateTodoRequest{
				Text:    "ship the release",
				Done:    true,
				Date:    "2026-08-27",
				EndDate: "2026-08-30",
			},
			want: model.Todo{
				Text:    "ship the release",
				Done:    true,
				Date:    time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
				EndDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "done defaults to false",
			req: dto.CreateTodoRequest{
				Text:    "write the docs",
				Date:    "2026-08-27",
				EndDate: "2026-08-27",
			},
			want: model.Todo{
				Text:    "write the docs",
				Done:    false,
				Date:    time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
				EndDate: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "unparsable start date",
			req: dto.CreateTodoRequest{
				Text:    "broken",
				Date:    "soon",
				EndDate: "2026-08-27",
			},
			wantErr: true,
		},
		{
			name: "unparsable end date",
			req: dto.CreateTodoRequest{
				Text:    "broken",
				Date:    "2026-08-27",
				EndDate: "later",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToModel()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want.Text, got.Text)
			assert.Equal(t, tt.want.Done, got.Done)
			assert.True(t, got.Date.Equal(tt.want.Date))
			assert.True(t, got.EndDate.Equal(tt.want.EndDate))
		})
	}
}

func TestUpdateTodoRequest_IsEmpty(t *testing.T) {
	empty := dto.UpdateTodoRequest{}
	assert.True(t, empty.IsEmpty())

	done := true
	partial := dto.UpdateTodoRequest{Done: &done}
	assert.False(t, partial.IsEmpty())
}

func TestUpdateTodoRequest_Fields(t *testing.T) {
	text := "new title"
	done := true
	date := "2026-09-01"
	badDate := "next week"

	tests := []struct {
		name    string
		req     dto.UpdateTodoRequest
		want    map[string]any
		wantErr bool
	}{
		{
			name: "empty request maps to no fields",
			req:  dto.UpdateTodoRequest{},
			want: map[string]any{},
		},
		{
			name: "single field",
			req:  dto.UpdateTodoRequest{Done: &done},
			want: map[string]any{
				model.FieldDone: true,
			},
		},
		{
			name: "all fields",
			req: dto.UpdateTodoRequest{
				Text:    &text,
				Done:    &done,
				Date:    &date,
				EndDate: &date,
			},
			want: map[string]any{
				model.FieldText:    "new title",
				model.FieldDone:    true,
				model.FieldDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				model.FieldEndDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "unparsable date fails the whole request",
			req:     dto.UpdateTodoRequest{Text: &text, Date: &badDate},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Fields()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, len(tt.want))

			for field, want := range tt.want {
				if wantTime, ok := want.(time.Time); ok {
					gotTime, ok := got[field].(time.Time)
					assert.True(t, ok, "field %s should hold a time.Time", field)
					assert.True(t, gotTime.Equal(wantTime))

					continue
				}

				assert.Equal(t, want, got[field])
			}
		})
	}
}

func TestTodoResponse_FromModel(t *testing.T) {
	todo := model.Todo{
		ID:      42,
		Text:    "review pull requests",
		Done:    true,
		Date:    time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		EndDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}

	res := dto.TodoResponse{}
	res.FromModel(todo)

	assert.Equal(t, dto.TodoResponse{
		ID:      42,
		Text:    "review pull requests",
		Done:    true,
		Date:    "2026-08-27",
		EndDate: "2026-08-29",
	}, res)
}

func TestTodoListFromModels(t *testing.T) {
	models := []model.Todo{
		{ID: 1, Text: "first", Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Text: "second", Done: true, Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)},
	}

	res := dto.TodoListFromModels(models)

	assert.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, int64(2), res[1].ID)
	assert.True(t, res[1].Done)

	empty := dto.TodoListFromModels(nil)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}
