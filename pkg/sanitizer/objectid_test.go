package sanitizer

import "testing"

func TestIsValidObjectID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "valid lowercase hex",
			input: "507f1f77bcf86cd799439011",
			want:  true,
		},
		{
			name:  "valid mixed case hex",
			input: "507F1F77BCF86CD799439011",
			want:  true,
		},
		{
			name:  "not an id",
			input: "not-an-id",
			want:  false,
		},
		{
			name:  "empty",
			input: "",
			want:  false,
		},
		{
			name:  "too short",
			input: "507f1f77bcf86cd79943901",
			want:  false,
		},
		{
			name:  "too long",
			input: "507f1f77bcf86cd7994390111",
			want:  false,
		},
		{
			name:  "non hex characters",
			input: "507f1f77bcf86cd79943901z",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidObjectID(tt.input); got != tt.want {
				t.Errorf("IsValidObjectID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
