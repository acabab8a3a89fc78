package builtin

import (
	"reflect"
	"testing"

	"coursedemand/pkg/records"
)

func TestDeDupApply(t *testing.T) {
	tests := []struct {
		name   string
		dedup  DeDup
		in     []records.Record
		want   []records.Record
	}{
		{
			name:  "keep_last_is_default",
			dedup: DeDup{Keys: []string{"enrollment_id"}},
			in: []records.Record{
				{"enrollment_id": "2022001", "choice_1": "Calculus"},
				{"enrollment_id": "2023002", "choice_1": "Physics"},
				{"enrollment_id": "2022001", "choice_1": "Algebra"},
			},
			want: []records.Record{
				{"enrollment_id": "2023002", "choice_1": "Physics"},
				{"enrollment_id": "2022001", "choice_1": "Algebra"},
			},
		},
		{
			name:  "keep_first",
			dedup: DeDup{Keys: []string{"enrollment_id"}, Policy: "keep-first"},
			in: []records.Record{
				{"enrollment_id": "2022001", "choice_1": "Calculus"},
				{"enrollment_id": "2022001", "choice_1": "Algebra"},
			},
			want: []records.Record{
				{"enrollment_id": "2022001", "choice_1": "Calculus"},
			},
		},
		{
			name:  "most_complete_prefers_filled_record",
			dedup: DeDup{Keys: []string{"enrollment_id"}, Policy: "most-complete"},
			in: []records.Record{
				{"enrollment_id": "2022001", "choice_1": "Calculus", "choice_2": "Physics"},
				{"enrollment_id": "2022001", "choice_1": "Algebra", "choice_2": nil},
			},
			want: []records.Record{
				{"enrollment_id": "2022001", "choice_1": "Calculus", "choice_2": "Physics"},
			},
		},
		{
			name:  "records_without_key_pass_through",
			dedup: DeDup{Keys: []string{"enrollment_id"}},
			in: []records.Record{
				{"enrollment_id": "2022001", "choice_1": "Calculus"},
				{"choice_1": "Physics"},
			},
			want: []records.Record{
				{"enrollment_id": "2022001", "choice_1": "Calculus"},
				{"choice_1": "Physics"},
			},
		},
		{
			name:  "no_keys_is_a_no_op",
			dedup: DeDup{},
			in: []records.Record{
				{"enrollment_id": "2022001"},
				{"enrollment_id": "2022001"},
			},
			want: []records.Record{
				{"enrollment_id": "2022001"},
				{"enrollment_id": "2022001"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dedup.Apply(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}
