package support

import (
	"testing"

	"github.com/akyairhashvil/umeed/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counselorIDs(list []models.Counselor) []string {
	var ids []string
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	return ids
}

func mentorIDs(list []models.Mentor) []string {
	var ids []string
	for _, m := range list {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestDirectoryEntries(t *testing.T) {
	require.Len(t, Counselors(), 6)
	require.Len(t, Mentors(), 6)
	for _, c := range Counselors() {
		assert.NotEmpty(t, c.Slots, c.Name)
		assert.Positive(t, c.Fee, c.Name)
	}
	for _, m := range Mentors() {
		assert.NotEmpty(t, m.Availability, m.Name)
	}

	c, ok := Counselor("c6")
	require.True(t, ok)
	assert.Equal(t, "Dr. Vikram Pandita", c.Name)
	_, ok = Mentor("c6")
	assert.False(t, ok)
}

func TestDirectoryReturnsCopies(t *testing.T) {
	list := Counselors()
	list[0].Name = "changed"
	c, _ := Counselor("c1")
	assert.Equal(t, "Dr. Meera Gupta", c.Name)
}

func TestFilterCounselors(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"c1", "c2", "c3", "c4", "c5", "c6"}},
		{"query by place", Filter{Query: "srinagar"}, []string{"c2", "c5"}},
		{"query by specialty", Filter{Query: "TRAUMA"}, []string{"c3"}},
		{"specialty", Filter{Specialty: "Stress Management"}, []string{"c1", "c4"}},
		{"discipline matches title", Filter{Specialty: "Counseling Psychology"}, []string{"c2", "c4"}},
		{"discipline matches title or specialty", Filter{Specialty: "Clinical Psychology"}, []string{"c1", "c3", "c5", "c6"}},
		{"both", Filter{Query: "jammu", Specialty: "Anxiety Disorders"}, []string{"c1", "c3"}},
		{"no match", Filter{Query: "leh"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := counselorIDs(FilterCounselors(Counselors(), tt.filter))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterCounselors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterMentors(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"m1", "m2", "m3", "m4", "m5", "m6"}},
		{"query by college", Filter{Query: "kashmir"}, []string{"m5", "m6"}},
		{"query by year", Filter{Query: "5th"}, []string{"m4"}},
		{"specialty", Filter{Specialty: "career guidance"}, []string{"m2", "m4", "m6"}},
		{"both", Filter{Query: "priya", Specialty: "Study Skills"}, []string{"m1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mentorIDs(FilterMentors(Mentors(), tt.filter))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterMentors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
