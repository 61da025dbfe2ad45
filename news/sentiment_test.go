package news

import "testing"

func TestAnalyze(t *testing.T) {
	tests := []struct {
		text  string
		label string
	}{
		{"Company beats expectations, shares surge on record profit", "positive"},
		{"Stock plunges after earnings miss, outlook downgraded", "negative"},
		{"Company schedules annual shareholder meeting", "neutral"},
		{"", "neutral"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := Analyze(tt.text)
			if got.Label != tt.label {
				t.Errorf("Analyze(%q) = %+v, want label %q", tt.text, got, tt.label)
			}
		})
	}
}

func TestAnalyzeScoreSign(t *testing.T) {
	pos := Analyze("record growth, strong profit")
	if pos.Score <= 0 {
		t.Errorf("positive text scored %v", pos.Score)
	}
	neg := Analyze("bankruptcy fears deepen losses")
	if neg.Score >= 0 {
		t.Errorf("negative text scored %v", neg.Score)
	}
	// Punctuation must not hide a lexicon word.
	if got := Analyze("profits!"); got.Label != "positive" {
		t.Errorf("Analyze(\"profits!\") = %+v, want positive", got)
	}
}

func TestAggregated(t *testing.T) {
	agg := Aggregated([]string{
		"Shares surge on record profit",
		"Strong growth beats expectations",
		"Analysts upgrade on strong rally",
		"Stock plunges on weak outlook",
	})
	if agg.Distribution["positive"] != 3 || agg.Distribution["negative"] != 1 {
		t.Errorf("distribution = %v", agg.Distribution)
	}
	if agg.Overall() != "positive" {
		t.Errorf("overall = %q, want positive", agg.Overall())
	}
	if agg.Dispersion <= 0 {
		t.Errorf("dispersion over mixed scores = %v, want > 0", agg.Dispersion)
	}
}

func TestAggregatedMixed(t *testing.T) {
	agg := Aggregated([]string{
		"Shares surge on record profit",
		"Stock plunges on weak outlook",
	})
	if agg.Overall() != "mixed" {
		t.Errorf("overall = %q, want mixed", agg.Overall())
	}
}

func TestAggregatedEmpty(t *testing.T) {
	agg := Aggregated(nil)
	if agg.Overall() != "neutral" {
		t.Errorf("overall of nothing = %q, want neutral", agg.Overall())
	}
	if agg.AverageScore != 0 {
		t.Errorf("average of nothing = %v, want 0", agg.AverageScore)
	}
}
