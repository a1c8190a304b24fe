package synth

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"
)

func newTestOscillator(t *testing.T, rate int) *Oscillator {
	t.Helper()
	o, err := NewOscillator(rate)
	if err != nil {
		t.Fatalf("NewOscillator: %v", err)
	}
	return o
}

// TestOscillator_SineTable tests the sine preset's wavetable shape
func TestOscillator_SineTable(t *testing.T) {
	o := newTestOscillator(t, 48000)
	table := o.Table()

	checks := map[int]float32{0: 1, TableSize / 4: 0, TableSize / 2: -1, 3 * TableSize / 4: 0}
	for i, want := range checks {
		if !approx(table[i], want, 1e-5) {
			t.Errorf("table[%d] = %v, want %v", i, table[i], want)
		}
	}
}

// TestOscillator_Spectrum tests each preset's harmonic content
func TestOscillator_Spectrum(t *testing.T) {
	tests := []struct {
		wave WaveType
		bins map[int]float64
	}{
		{Sine, map[int]float64{1: 1, 2: 0, 3: 0}},
		// the second assignment to harmonic 2 wins
		{Wave909, map[int]float64{1: 1, 2: 0.1, 3: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.wave.String(), func(t *testing.T) {
			o := newTestOscillator(t, 48000)
			o.SetWave(tt.wave)
			table := o.Table()

			x := make([]float64, TableSize)
			for i, v := range table {
				x[i] = float64(v)
			}
			spec := fft.FFTReal(x)

			for bin, amp := range tt.bins {
				got := cmplx.Abs(spec[bin]) / (TableSize / 2)
				if math.Abs(got-amp) > 1e-4 {
					t.Errorf("harmonic %d amplitude = %v, want %v", bin, got, amp)
				}
			}
			if dc := cmplx.Abs(spec[0]); dc > 1e-3 {
				t.Errorf("DC component = %v, want 0", dc)
			}
		})
	}
}

// TestOscillator_Periodicity tests that phase returns to the start after one cycle
func TestOscillator_Periodicity(t *testing.T) {
	o := newTestOscillator(t, 48000)
	o.SetFrequency(480)

	for _, start := range []float32{0, 0.25, 0.6} {
		o.SetStartPhase(start)
		o.Reset()
		for i := 0; i < 48000/480; i++ {
			o.Process()
		}
		d := math.Abs(float64(o.Phase() - start))
		d = math.Min(d, 1-d)
		if d > 1e-4 {
			t.Errorf("start %v: phase after one cycle = %v", start, o.Phase())
		}
	}
}

// TestOscillator_Interpolation tests reading between table entries
func TestOscillator_Interpolation(t *testing.T) {
	o := newTestOscillator(t, TableSize*2)
	o.SetFrequency(1)
	o.Reset()
	table := o.Table()

	// half a table entry per sample
	got := o.Process()
	want := table[0]*0.5 + table[1]*0.5
	if !approx(got, want, 1e-6) {
		t.Errorf("interpolated sample = %v, want %v", got, want)
	}
	if got = o.Process(); !approx(got, table[1], 1e-6) {
		t.Errorf("on-grid sample = %v, want %v", got, table[1])
	}
}

// TestOscillator_StartPhaseWraps tests wrapping of out-of-range start phases
func TestOscillator_StartPhaseWraps(t *testing.T) {
	o := newTestOscillator(t, 48000)
	tests := []struct{ in, want float32 }{
		{1.25, 0.25},
		{-0.25, 0.75},
		{0.5, 0.5},
	}
	for _, tt := range tests {
		o.SetStartPhase(tt.in)
		if !approx(o.StartPhase(), tt.want, 1e-6) {
			t.Errorf("SetStartPhase(%v) = %v, want %v", tt.in, o.StartPhase(), tt.want)
		}
	}
}

// TestOscillator_OutOfRangeFrequency tests that negative and non-finite
// frequencies still read inside the table
func TestOscillator_OutOfRangeFrequency(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	for _, f := range []float32{-100, -48000 * 3, nan, inf} {
		o := newTestOscillator(t, 48000)
		o.SetFrequency(f)
		for i := 0; i < 10; i++ {
			x := o.Process()
			if x < -1.001 || x > 1.001 {
				t.Fatalf("frequency %v sample %d = %v, outside the table range", f, i, x)
			}
		}
	}
}

// TestOscillator_NegativeFrequencyMirrors tests that a negative frequency
// walks the table backwards
func TestOscillator_NegativeFrequencyMirrors(t *testing.T) {
	up := newTestOscillator(t, 48000)
	down := newTestOscillator(t, 48000)
	up.SetFrequency(100)
	down.SetFrequency(-100)
	for i := 0; i < 50; i++ {
		a, b := up.Process(), down.Process()
		// the sine table is a cosine, so it is even around phase 0
		if !approx(a, b, 1e-4) {
			t.Fatalf("sample %d: +f = %v, -f = %v", i, a, b)
		}
	}
}

// BenchmarkOscillator measures per-sample cost
func BenchmarkOscillator(b *testing.B) {
	o, _ := NewOscillator(48000)
	o.SetWave(Wave909)
	o.SetFrequency(55)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.Process()
	}
}
