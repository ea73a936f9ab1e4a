package dto_test

import (
	"reflect"
	"testing"

	"worktrack/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "eq with table prefix",
			filter: dto.Filter{
				Field:    "id",
				Value:    int64(7),
				Operator: dto.FilterOperatorEq,
				Table:    "todos",
			},
			expectedSQL:  "todos.id = :id",
			expectedArgs: map[string]any{"id": int64(7)},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "done",
				Value:    true,
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "done = :done",
			expectedArgs: map[string]any{"done": true},
		},
		{
			name: "not eq",
			filter: dto.Filter{
				Field:    "done",
				Value:    false,
				Operator: dto.FilterOperatorNotEq,
			},
			expectedSQL:  "done != :done",
			expectedArgs: map[string]any{"done": false},
		},
		{
			name: "less eq",
			filter: dto.Filter{
				Field:    "id",
				Value:    10,
				Operator: dto.FilterOperatorLessEq,
			},
			expectedSQL:  "id <= :id",
			expectedArgs: map[string]any{"id": 10},
		},
		{
			name: "in with slice expands named args",
			filter: dto.Filter{
				Field:    "id",
				Value:    []int64{1, 2},
				Operator: dto.FilterOperatorIn,
			},
			expectedSQL:  "id IN (:id_0, :id_1) ",
			expectedArgs: map[string]any{"id_0": int64(1), "id_1": int64(2)},
		},
		{
			name: "explicit arg name",
			filter: dto.Filter{
				ArgName:  "todo_id",
				Field:    "id",
				Value:    int64(7),
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "id = :todo_id",
			expectedArgs: map[string]any{"todo_id": int64(7)},
		},
		{
			name: "unknown operator yields nothing",
			filter: dto.Filter{
				Field:    "id",
				Value:    int64(7),
				Operator: "like",
			},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			if sql != tt.expectedSQL {
				t.Errorf("expected clause %q, got %q", tt.expectedSQL, sql)
			}

			if !reflect.DeepEqual(args, tt.expectedArgs) {
				t.Errorf("expected args %+v, got %+v", tt.expectedArgs, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields nothing", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		sql, args := group.GetWhereClause()

		if sql != "" {
			t.Errorf("expected empty clause, got %q", sql)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %+v", args)
		}
	})

	t.Run("joins filters with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "id", Value: int64(7), Operator: dto.FilterOperatorEq, Table: "todos"},
				dto.Filter{Field: "done", Value: true, Operator: dto.FilterOperatorEq},
			},
		}

		sql, args := group.GetWhereClause()

		expected := "(todos.id = :id AND done = :done)"
		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}

		expectedArgs := map[string]any{"id": int64(7), "done": true}
		if !reflect.DeepEqual(args, expectedArgs) {
			t.Errorf("expected args %+v, got %+v", expectedArgs, args)
		}
	})

	t.Run("nested groups flatten into one clause", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "done", Value: true, Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorAnd,
					Filters: []any{
						dto.Filter{ArgName: "min_id", Field: "id", Value: int64(1), Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		sql, _ := group.GetWhereClause()

		expected := "(done = :done OR (id = :min_id))"
		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}
	})
}
