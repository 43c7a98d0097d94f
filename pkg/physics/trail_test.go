package physics

import "testing"

func TestTrailZeroCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(V(1, 2))
	if tr.Len() != 0 {
		t.Errorf("Expected empty trail, got %d points", tr.Len())
	}
	if pts := tr.Points(); len(pts) != 0 {
		t.Errorf("Expected no points, got %v", pts)
	}
}

func TestTrailNegativeCapacity(t *testing.T) {
	tr := NewTrail(-4)
	if tr.Cap() != 0 {
		t.Errorf("Expected capacity 0, got %d", tr.Cap())
	}
}

func TestTrailEvictsOldestFirst(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 7; i++ {
		tr.Push(V(float64(i), 0))
		if tr.Len() > 3 {
			t.Fatalf("Trail grew past capacity: %d", tr.Len())
		}
	}

	want := []float64{4, 5, 6}
	got := tr.Points()
	if len(got) != len(want) {
		t.Fatalf("Expected %d points, got %d", len(want), len(got))
	}
	for i, x := range want {
		if got[i].X != x {
			t.Errorf("Point %d: expected x=%v, got %v", i, x, got[i].X)
		}
		if tr.At(i) != got[i] {
			t.Errorf("At(%d) = %v, Points()[%d] = %v", i, tr.At(i), i, got[i])
		}
	}
}

func TestTrailPartiallyFilled(t *testing.T) {
	tr := NewTrail(5)
	tr.Push(V(1, 1))
	tr.Push(V(2, 2))

	got := tr.Points()
	if len(got) != 2 || got[0] != V(1, 1) || got[1] != V(2, 2) {
		t.Errorf("Expected [(1,1) (2,2)], got %v", got)
	}
}

func TestTrailPointsIsCopy(t *testing.T) {
	tr := NewTrail(2)
	tr.Push(V(1, 1))
	pts := tr.Points()
	pts[0] = V(9, 9)
	if tr.At(0) != V(1, 1) {
		t.Errorf("Mutating Points() result changed the trail: %v", tr.At(0))
	}
}

func TestTrailReset(t *testing.T) {
	tr := NewTrail(2)
	tr.Push(V(1, 1))
	tr.Push(V(2, 2))
	tr.Push(V(3, 3))
	tr.Reset()
	if tr.Len() != 0 || tr.Cap() != 2 {
		t.Fatalf("Expected empty trail with capacity 2, got len=%d cap=%d", tr.Len(), tr.Cap())
	}
	tr.Push(V(4, 4))
	if got := tr.Points(); len(got) != 1 || got[0] != V(4, 4) {
		t.Errorf("Expected [(4,4)] after reset, got %v", got)
	}
}

func TestTrailAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out of range index")
		}
	}()
	NewTrail(2).At(0)
}
