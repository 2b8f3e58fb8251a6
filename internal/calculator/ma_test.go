package calculator

import (
	"testing"

	"StockDesk/internal/model"
)

func TestMean(t *testing.T) {
	tests := []struct {
		prices []float64
		want   float64
	}{
		{[]float64{100}, 100},
		{[]float64{1, 2, 3, 4}, 2.5},
		{[]float64{100.004, 100.006}, 100.005},
	}
	for _, tt := range tests {
		got, err := Mean(tt.prices)
		if err != nil {
			t.Fatalf("Mean(%v): %v", tt.prices, err)
		}
		if got != tt.want {
			t.Errorf("Mean(%v): expected %v, got %v", tt.prices, tt.want, got)
		}
	}
}

func TestMean_Empty(t *testing.T) {
	if _, err := Mean(nil); err == nil {
		t.Error("expected error for empty prices")
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{100.005, 100.01},
		{100.004, 100},
		{187.4449, 187.44},
		{-1.005, -1.01},
		{42, 42},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestLastCloses(t *testing.T) {
	bars := []model.OHLCV{{Close: 1}, {Close: 2}, {Close: 3}, {Close: 4}, {Close: 5}, {Close: 6}}
	got := LastCloses(bars, 5)
	want := []float64{2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("expected %d closes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if got := LastCloses(bars[:2], 5); len(got) != 2 {
		t.Errorf("expected 2 closes for short input, got %d", len(got))
	}
}
