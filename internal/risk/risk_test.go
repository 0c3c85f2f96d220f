package risk

import "testing"

func TestAssess_Scoring(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantScore int
		wantLevel Level
	}{
		{
			name:      "worst case",
			in:        Input{Elevation: "low", WaterProximity: "very-close", Drainage: "poor", History: "frequent"},
			wantScore: 12,
			wantLevel: LevelHigh,
		},
		{
			name:      "best case",
			in:        Input{Elevation: "high", WaterProximity: "far", Drainage: "good", History: "never"},
			wantScore: 0,
			wantLevel: LevelLow,
		},
		{
			name:      "middle values",
			in:        Input{Elevation: "medium", WaterProximity: "close", Drainage: "average", History: "occasional"},
			wantScore: 7,
			wantLevel: LevelMedium,
		},
		{
			name:      "score seven stays medium",
			in:        Input{Elevation: "low", WaterProximity: "very-close", Drainage: "average", History: "never"},
			wantScore: 7,
			wantLevel: LevelMedium,
		},
		{
			name:      "score eight is high",
			in:        Input{Elevation: "low", WaterProximity: "close", Drainage: "poor", History: "never"},
			wantScore: 8,
			wantLevel: LevelHigh,
		},
		{
			name:      "score five is medium",
			in:        Input{Elevation: "medium", WaterProximity: "far", Drainage: "poor", History: "never"},
			wantScore: 5,
			wantLevel: LevelMedium,
		},
		{
			name:      "score four is low",
			in:        Input{Elevation: "medium", WaterProximity: "close", Drainage: "good", History: "never"},
			wantScore: 4,
			wantLevel: LevelLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.in)
			if got.Score != tt.wantScore {
				t.Errorf("expected score %d, got %d", tt.wantScore, got.Score)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("expected level %s, got %s", tt.wantLevel, got.Level)
			}
			if got.MaxScore != MaxScore {
				t.Errorf("expected max score %d, got %d", MaxScore, got.MaxScore)
			}
		})
	}
}

func TestAssess_UnrecognizedValuesScoreZero(t *testing.T) {
	got := Assess(Input{Elevation: "subterranean", WaterProximity: "floating", Drainage: "0", History: "biblical"})
	if got.Score != 0 {
		t.Errorf("expected score 0 for unrecognized values, got %d", got.Score)
	}
	if got.Level != LevelLow {
		t.Errorf("expected %s, got %s", LevelLow, got.Level)
	}
	if len(got.Factors) != 0 {
		t.Errorf("expected no factor bullets, got %v", got.Factors)
	}
}

func TestAssess_FactorBulletsOnlyForTopValues(t *testing.T) {
	got := Assess(Input{Elevation: "low", WaterProximity: "close", Drainage: "poor", History: "occasional"})
	if len(got.Factors) != 2 {
		t.Fatalf("expected 2 factor bullets, got %d: %v", len(got.Factors), got.Factors)
	}
	// Only the highest-risk value per factor triggers a bullet; "close" and
	// "occasional" score points but are not flagged.
	for _, f := range got.Factors {
		if f == "" {
			t.Error("empty factor bullet")
		}
	}
}

func TestAssess_CaseAndWhitespaceInsensitive(t *testing.T) {
	got := Assess(Input{Elevation: " LOW ", WaterProximity: "Very-Close", Drainage: "POOR", History: "Frequent"})
	if got.Score != 12 {
		t.Errorf("expected score 12, got %d", got.Score)
	}
}

func TestAssess_CarriesMetadataUntouched(t *testing.T) {
	loc := Location{City: "Norwich", Country: "UK", Latitude: 52.63, Longitude: 1.29}
	got := Assess(Input{Elevation: "low", Notes: "garden floods every spring", Location: loc})
	if got.Notes != "garden floods every spring" {
		t.Errorf("notes not carried through: %q", got.Notes)
	}
	if got.Location != loc {
		t.Errorf("location metadata changed: %+v", got.Location)
	}
	// Location never contributes to the score.
	if got.Score != 3 {
		t.Errorf("expected score 3, got %d", got.Score)
	}
}
