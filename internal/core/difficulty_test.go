package core

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in    string
		want  Difficulty
		known bool
	}{
		{"easy", DifficultyEasy, true},
		{" Medium ", DifficultyMedium, true},
		{"HARD", DifficultyHard, true},
		{"insane", Difficulty("insane"), false},
		{"", Difficulty(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, known := ParseDifficulty(tt.in)
			if got != tt.want || known != tt.known {
				t.Errorf("ParseDifficulty(%q) = (%q, %v), want (%q, %v)", tt.in, got, known, tt.want, tt.known)
			}
		})
	}
}

func TestDifficultyCycle(t *testing.T) {
	d := DifficultyEasy
	seen := []Difficulty{d}
	for i := 0; i < 3; i++ {
		d = d.Next()
		seen = append(seen, d)
	}
	want := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyEasy}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Next cycle = %v, want %v", seen, want)
		}
	}

	if got := DifficultyEasy.Prev(); got != DifficultyHard {
		t.Errorf("Easy.Prev() = %q, want hard", got)
	}
	if got := Difficulty("bogus").Next(); got != DefaultDifficulty {
		t.Errorf("unknown.Next() = %q, want %q", got, DefaultDifficulty)
	}
}

func TestBandContains(t *testing.T) {
	b := Band{Min: 4, Max: 6}
	if !b.Contains(4) || !b.Contains(6) {
		t.Error("band should include its bounds")
	}
	if b.Contains(3) || b.Contains(7) {
		t.Error("band should exclude values outside its bounds")
	}
}
