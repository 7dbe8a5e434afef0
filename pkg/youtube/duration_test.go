package youtube

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "hours minutes seconds", input: "PT1H2M3S", want: 3723},
		{name: "seconds only", input: "PT90S", want: 90},
		{name: "minutes only", input: "PT4M", want: 240},
		{name: "hours only", input: "PT2H", want: 7200},
		{name: "shorts length", input: "PT59S", want: 59},
		{name: "no prefix", input: "3M20S", want: 200},
		{name: "unit without digits ignored", input: "PTMS", want: 0},
		{name: "unknown unit skipped", input: "P1DT1S", want: 1},
		{name: "garbage", input: "hello", want: 0},
		{name: "trailing digits dropped", input: "PT1M30", want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.input); got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
