package textutil

import "testing"

// TestFormatDate tests free-text date normalization.
func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "day month year",
			input: "12 March 2024",
			want:  "2024-03-12",
		},
		{
			name:  "month day comma year",
			input: "March 12, 2024",
			want:  "2024-03-12",
		},
		{
			name:  "single digit day",
			input: "4 July 2023",
			want:  "2023-07-04",
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  12 March 2024  ",
			want:  "2024-03-12",
		},
		{
			name:  "unrecognized format passes through unchanged",
			input: "12/03/2024",
			want:  "12/03/2024",
		},
		{
			name:  "arbitrary text passes through",
			input: "sometime last week",
			want:  "sometime last week",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatDate(tt.input)
			if got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
