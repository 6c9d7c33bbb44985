package models

import (
	"testing"

	"github.com/Clyding/EmotionCV/pipeline"
)

func TestEmotionSessionScoreColumnsRoundTrip(t *testing.T) {
	fused := pipeline.NewDistribution()
	fused[pipeline.Sad] = 0.42
	fused[pipeline.Neutral] = 0.3

	report := pipeline.RiskReport{
		SelfHarmRisk:     0.9,
		SevereStressRisk: 0.336,
		TriggersFound:    1,
		Assessment:       pipeline.AssessmentHigh,
	}

	session := EmotionSession{}
	if err := session.SetEmotionScores(fused); err != nil {
		t.Fatalf("set emotion scores: %v", err)
	}
	if err := session.SetRiskAssessment(report); err != nil {
		t.Fatalf("set risk assessment: %v", err)
	}

	gotScores, err := session.GetEmotionScores()
	if err != nil {
		t.Fatalf("get emotion scores: %v", err)
	}
	for _, label := range pipeline.Labels {
		if gotScores[label] != fused[label] {
			t.Fatalf("score mismatch for %s: %v vs %v", label, gotScores[label], fused[label])
		}
	}

	gotReport, err := session.GetRiskAssessment()
	if err != nil {
		t.Fatalf("get risk assessment: %v", err)
	}
	if gotReport != report {
		t.Fatalf("risk report mismatch: %+v vs %+v", gotReport, report)
	}
}

func TestEmotionSessionEmptyColumnsDecode(t *testing.T) {
	session := EmotionSession{}

	scores, err := session.GetEmotionScores()
	if err != nil {
		t.Fatalf("get emotion scores: %v", err)
	}
	if scores.Sum() != 0 || len(scores) != 7 {
		t.Fatalf("expected all-zero distribution for empty column, got %v", scores)
	}

	report, err := session.GetRiskAssessment()
	if err != nil {
		t.Fatalf("get risk assessment: %v", err)
	}
	if report != (pipeline.RiskReport{}) {
		t.Fatalf("expected zero report for empty column, got %+v", report)
	}
}
