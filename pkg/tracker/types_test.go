package tracker

import "testing"

// TestParsePattern tests the text pattern format
func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("X..x | -.x.")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	want := []Step{
		{true, VelocityAccent}, {}, {}, {true, VelocityNormal},
		{}, {}, {true, VelocityNormal}, {},
	}
	if len(p.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(p.Rows), len(want))
	}
	for i := range want {
		if p.Rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, p.Rows[i], want[i])
		}
	}
	if got := p.String(); got != "X..x|..x." {
		t.Errorf("String() = %q", got)
	}
}

// TestParsePattern_Errors tests rejected input
func TestParsePattern_Errors(t *testing.T) {
	for _, s := range []string{"", "  | ", "x.o."} {
		if _, err := ParsePattern(s); err == nil {
			t.Errorf("ParsePattern(%q) should fail", s)
		}
	}
}

// TestPattern_Timing tests tracker tick and row lengths
func TestPattern_Timing(t *testing.T) {
	p := NewPattern(16)
	// 125 BPM: 50 ticks per second
	if got := p.TickSamples(48000); got != 960 {
		t.Errorf("TickSamples = %d, want 960", got)
	}
	if got := p.RowSamples(48000); got != 5760 {
		t.Errorf("RowSamples = %d, want 5760", got)
	}
}

// TestPattern_SetTempo tests tempo clamping
func TestPattern_SetTempo(t *testing.T) {
	p := NewPattern(4)
	tests := []struct{ in, want int }{{10, 32}, {140, 140}, {900, 255}}
	for _, tt := range tests {
		p.SetTempo(tt.in)
		if int(p.Tempo) != tt.want {
			t.Errorf("SetTempo(%d) = %d, want %d", tt.in, p.Tempo, tt.want)
		}
	}
}

// TestPattern_Cycle tests stepping through rest, hit and accent
func TestPattern_Cycle(t *testing.T) {
	p := NewPattern(1)
	want := []Step{{true, VelocityNormal}, {true, VelocityAccent}, {}}
	for i, w := range want {
		p.Cycle(0)
		if p.Rows[0] != w {
			t.Errorf("cycle %d = %+v, want %+v", i, p.Rows[0], w)
		}
	}
	p.Cycle(5) // out of range is ignored
}

// TestNoteName tests stage labels
func TestNoteName(t *testing.T) {
	tests := []struct {
		octave, note int
		want         string
	}{
		{8, 0, "C8"},
		{4, 7, "G4"},
		{1, 9, "A1"},
		{3, 12, "?3"},
	}
	for _, tt := range tests {
		if got := NoteName(tt.octave, tt.note); got != tt.want {
			t.Errorf("NoteName(%d, %d) = %q, want %q", tt.octave, tt.note, got, tt.want)
		}
	}
}
