package util

import "testing"

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "encoded image ceiling", bytes: 900_000, expected: "878.9 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		meters   float64
		expected string
	}{
		{0, "0 m"},
		{849.6, "850 m"},
		{1000, "1.0 km"},
		{2430, "2.4 km"},
	}

	for _, tt := range tests {
		if got := FormatDistance(tt.meters); got != tt.expected {
			t.Fatalf("FormatDistance(%v) = %q, want %q", tt.meters, got, tt.expected)
		}
	}
}
