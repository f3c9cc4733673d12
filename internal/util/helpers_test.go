package util

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct{ v, want int }{{-3, 1}, {1, 1}, {5, 5}, {10, 10}, {12, 10}}
	for _, tt := range tests {
		if got := Clamp(tt.v, 1, 10); got != tt.want {
			t.Fatalf("Clamp(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}
