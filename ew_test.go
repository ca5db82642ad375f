package ew

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"
)

func TestPointCopies(t *testing.T) {
	pos := []float64{1, 2, 3}
	p := NewPoint(pos, 4)
	pos[0] = 99

	if p.At(0) != 1 {
		t.Errorf("[ERROR] point shares caller's slice: got %v, want 1", p.At(0))
	}

	out := p.Pos()
	out[1] = 99
	if p.At(1) != 2 {
		t.Errorf("[ERROR] Pos leaks internal slice: got %v, want 2", p.At(1))
	}
}

func TestIntervalsCheck(t *testing.T) {
	ivs := UniformIntervals(3, -10, 10)
	if err := ivs.Check(3); err != nil {
		t.Errorf("[ERROR] valid box rejected: %v", err)
	}
	if err := ivs.Check(4); err == nil {
		t.Errorf("[ERROR] dimension mismatch accepted")
	}

	bad := Intervals{{Min: 5, Max: -5}}
	if err := bad.Check(1); err == nil {
		t.Errorf("[ERROR] inverted interval accepted")
	}
}

func TestRandPopInsideBox(t *testing.T) {
	Rand = rand.New(rand.NewSource(7))
	defer func() { Rand = stdRng{} }()

	ivs := Intervals{{Min: -3, Max: -1}, {Min: 0, Max: 10}}
	for _, p := range RandPop(50, ivs) {
		if !math.IsInf(p.Val, 1) {
			t.Errorf("[ERROR] initial point already evaluated: %v", p.Val)
		}
		if !ivs.Contains(p.Pos()) {
			t.Errorf("[ERROR] point %v outside box", p.Pos())
		}
	}
}

func TestVerboseLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewVerboseLogger(&buf, 4)
	l.Start(2)
	l.LogIteration(0, NewPoint([]float64{1.5, -2.5}, 0.25))

	out := buf.String()
	if !strings.Contains(out, "1.5000") || !strings.Contains(out, "-2.5000") || !strings.Contains(out, "0.2500") {
		t.Errorf("[ERROR] unexpected verbose output:\n%v", out)
	}
}

func TestResultOnlyLoggerFailed(t *testing.T) {
	var buf bytes.Buffer
	l := NewResultOnlyLogger(&buf, 4)
	l.Start(2)
	l.Finish(Point{}, false)

	if strings.TrimSpace(buf.String()) != "Failed" {
		t.Errorf("[ERROR] failed run printed %q, want Failed", buf.String())
	}
}
