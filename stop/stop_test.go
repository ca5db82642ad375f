package stop

import "testing"

func TestThreshold(t *testing.T) {
	c := NewThreshold(1e-3)
	c.Start()

	if c.Stop(0, 1.0) {
		t.Errorf("[ERROR] fired above threshold")
	}
	if !c.Stop(1, 1e-3) {
		t.Errorf("[ERROR] did not fire at threshold")
	}
	if !c.Stop(2, 1e-9) {
		t.Errorf("[ERROR] did not fire below threshold")
	}
}

func TestMaxIterations(t *testing.T) {
	c := NewMaxIterations(3)
	c.Start()

	for iter := 0; iter < 2; iter++ {
		if c.Stop(iter, 1.0) {
			t.Errorf("[ERROR] fired after %v iterations, want 3", iter+1)
		}
	}
	if !c.Stop(2, 1.0) {
		t.Errorf("[ERROR] did not fire after 3 iterations")
	}
}

func TestGoalNotChange(t *testing.T) {
	c := NewGoalNotChange(3, 1e-6)
	c.Start()

	// Steadily improving - never fires.
	vals := []float64{10, 8, 6, 4, 2}
	for i, v := range vals {
		if c.Stop(i, v) {
			t.Errorf("[ERROR] fired at iter %v while improving", i)
		}
	}

	// Stagnation fires only once the window is full again.
	if c.Stop(5, 2) || c.Stop(6, 2) {
		t.Errorf("[ERROR] fired before stagnation window filled")
	}
	if !c.Stop(7, 2) {
		t.Errorf("[ERROR] did not fire after 3 stagnant iterations")
	}
}

func TestGoalNotChangeReset(t *testing.T) {
	c := NewGoalNotChange(2, 1e-6)
	c.Start()
	c.Stop(0, 5)
	c.Stop(1, 5)

	// A new run must not inherit the previous run's history.
	c.Start()
	if c.Stop(0, 5) {
		t.Errorf("[ERROR] fired immediately after reset")
	}
}

func TestCompositeAny(t *testing.T) {
	thresh := NewThreshold(1e-6)
	maxiter := NewMaxIterations(5)
	stale := NewGoalNotChange(2, 1e-9)
	c := NewCompositeAny(thresh, stale, maxiter)
	c.Start()

	if c.Stop(0, 1.0) {
		t.Errorf("[ERROR] fired with no child condition met")
	}
	if !c.Stop(1, 1e-7) {
		t.Errorf("[ERROR] did not fire on threshold child")
	}

	c.Start()
	for iter := 0; iter < 4; iter++ {
		c.Stop(iter, float64(10-iter))
	}
	if !c.Stop(4, 6) {
		t.Errorf("[ERROR] did not fire on iteration-cap child")
	}
}
