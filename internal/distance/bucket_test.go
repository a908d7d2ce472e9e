package distance

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		d     uint16
		level int
		ok    bool
	}{
		{0, 0, false},
		{1, 5, true},
		{5, 5, true},
		{6, 4, true},
		{10, 4, true},
		{11, 3, true},
		{15, 3, true},
		{16, 2, true},
		{20, 2, true},
		{21, 1, true},
		{25, 1, true},
		{26, 0, false},
		{30, 0, false},
		{31, 0, true},
		{500, 0, true},
	}
	for _, tt := range tests {
		level, ok := Classify(tt.d)
		if level != tt.level || ok != tt.ok {
			t.Errorf("Classify(%d) = %d,%v want %d,%v", tt.d, level, ok, tt.level, tt.ok)
		}
	}
}

func TestBucketerSequence(t *testing.T) {
	b := NewBucketer(Left)
	steps := []struct {
		d       uint16
		level   int
		changed bool
		reading uint16
	}{
		{1, 5, true, 1},
		{5, 5, false, 5},
		{6, 4, true, 6},
		{10, 4, false, 10},
		{26, 4, false, 26}, // gap keeps what is on screen
		{31, 0, true, 0},
		{31, 0, false, 0},
	}
	for i, s := range steps {
		level, changed, reading := b.Update(s.d)
		if level != s.level || changed != s.changed || reading != s.reading {
			t.Errorf("step %d Update(%d) = %d,%v,%d want %d,%v,%d",
				i, s.d, level, changed, reading, s.level, s.changed, s.reading)
		}
	}
}

func TestBucketerIdempotent(t *testing.T) {
	b := NewBucketer(Right)
	if _, changed, _ := b.Update(12); !changed {
		t.Fatal("first reading should change the level")
	}
	for i := 0; i < 3; i++ {
		if _, changed, _ := b.Update(12); changed {
			t.Fatalf("repeat %d fired a redraw", i)
		}
	}
	b.Reset()
	if _, changed, _ := b.Update(12); !changed {
		t.Error("reset should allow the level to be drawn again")
	}
}
