package tuning

import (
	"math"
	"testing"
)

func TestEarlyScore(t *testing.T) {
	tests := []struct {
		name       string
		growthRate float64
		want       float64
	}{
		{"full score at 100% growth", 1.0, 100},
		{"half score at 50% growth", 0.5, 50},
		{"clamped above", 2.5, 100},
		{"clamped below at negative growth", -0.1, 0},
		{"zero growth", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := earlyScore(tt.growthRate); got != tt.want {
				t.Fatalf("earlyScore(%v) = %v, want %v", tt.growthRate, got, tt.want)
			}
		})
	}
}

func TestRetentionScore(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"inside band", 0.80, 100},
		{"at low bound", 0.70, 100},
		{"at high bound", 0.90, 100},
		{"too generous", 0.95, 90},
		{"too harsh", 0.60, 80},
		{"clamped at extreme", 1.50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := retentionScore(tt.ratio)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("retentionScore(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestWhaleScore(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"controlled", 0.30, 100},
		{"just over ceiling", 0.50, 80},
		{"uncontrolled", 0.90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := whaleScore(tt.ratio)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("whaleScore(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}

	// Monotone: a more efficient whale never scores better.
	prev := 101.0
	for ratio := 0.0; ratio <= 1.2; ratio += 0.05 {
		got := whaleScore(ratio)
		if got > prev {
			t.Fatalf("whaleScore not monotone at %v: %v > %v", ratio, got, prev)
		}
		prev = got
	}
}

func TestTargetScore(t *testing.T) {
	tests := []struct {
		name        string
		fpPerDollar float64
		peak        float64
		want        float64
	}{
		{"exact hit", 500, 5.0, 100},
		{"one multiplier short", 400, 5.0, 80},
		{"one multiplier over", 600, 5.0, 80},
		{"far miss clamped", 100, 8.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := targetScore(tt.fpPerDollar, tt.peak)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("targetScore(%v, %v) = %v, want %v", tt.fpPerDollar, tt.peak, got, tt.want)
			}
		})
	}
}

func TestFlashScore(t *testing.T) {
	if got := flashScore(0.20); got != 100 {
		t.Fatalf("flashScore(0.20) = %v, want 100", got)
	}
	got := flashScore(0.50)
	if math.Abs(got-60) > 1e-9 {
		t.Fatalf("flashScore(0.50) = %v, want 60", got)
	}
}

func TestScoreFromAnalysisWeighting(t *testing.T) {
	a := &Analysis{
		Early: EarlyAdoption{
			GrowthRate:        1.0, // early 100
			TargetFPPerDollar: 500, // target 100 at peak 5
		},
		Retention: Retention{Week20VsTarget: 0.80}, // retention 100
		Whale: WhaleControl{
			MaxVsTarget:   0.50, // whale 80
			FlashVsTarget: 0.20, // flash 100
		},
	}

	s := scoreFromAnalysis(5.0, Ceiling{Label: "test"}, a)

	want := 100*weightEarly + 100*weightRetention + 80*weightWhale +
		100*weightTarget + 100*weightFlash
	if math.Abs(s.TotalScore-want) > 1e-9 {
		t.Fatalf("total score = %v, want %v", s.TotalScore, want)
	}
	if s.WhaleScore != 80 {
		t.Fatalf("whale sub-score = %v, want 80", s.WhaleScore)
	}
	if s.Analysis != a {
		t.Fatalf("score must carry its analysis")
	}
	if s.MaxWhaleEfficiency != 0.50 || s.FlashWhaleEfficiency != 0.20 {
		t.Fatalf("raw metrics not carried: %+v", s)
	}
}
