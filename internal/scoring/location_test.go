package scoring

import "testing"

func TestLocationBoost(t *testing.T) {
	tests := []struct {
		name      string
		posting   string
		locations []string
		want      float64
	}{
		{"exact match", "Aracaju", []string{"Aracaju"}, 0.2},
		{"case insensitive", "aracaju", []string{"ARACAJU"}, 0.2},
		{"accent insensitive", "São Cristóvão", []string{"sao cristovao"}, 0.2},
		{"no match", "Lagarto", []string{"Aracaju", "Estância"}, 0},
		{"no declared locations", "Aracaju", nil, 0},
		{"posting without location", "", []string{"Aracaju"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocationBoost(tt.posting, tt.locations, 0.2); got != tt.want {
				t.Errorf("LocationBoost(%q, %v) = %v, want %v", tt.posting, tt.locations, got, tt.want)
			}
		})
	}
}
