package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		codes []string
		want  string
	}{
		{"department empty", Department, nil, "D1"},
		{"department first taken", Department, []string{"D1"}, "D2"},
		{"department gap keeps max rule", Department, []string{"D1", "D5"}, "D6"},
		{"lesson empty starts at 100", Lesson, nil, "L100"},
		{"lesson continues from max", Lesson, []string{"L100", "L101"}, "L102"},
		{"teacher empty starts at 1000", Teacher, nil, "T1000"},
		{"teacher continues", Teacher, []string{"T1000", "T1003"}, "T1004"},
		{"student has no prefix", Student, nil, "1000"},
		{"student continues", Student, []string{"1000", "1001"}, "1002"},
		{"foreign shapes ignored", Department, []string{"X9", "D2x", "D03a", ""}, "D1"},
		{"prefix of other kind ignored", Department, []string{"L100", "D3"}, "D4"},
		{"unpadded numeric compare", Teacher, []string{"T999", "T1000"}, "T1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Next(tt.codes))
		})
	}
}
