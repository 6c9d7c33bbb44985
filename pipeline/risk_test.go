package pipeline

import (
	"math"
	"testing"
)

func TestAssessRiskSelfHarmKeyword(t *testing.T) {
	report := AssessRisk("I want to kill myself", NewDistribution())

	if report.SelfHarmRisk != 0.9 {
		t.Fatalf("expected self harm risk 0.9, got %v", report.SelfHarmRisk)
	}
	if report.Assessment != AssessmentHigh {
		t.Fatalf("expected %q, got %q", AssessmentHigh, report.Assessment)
	}
	if report.TriggersFound < 1 {
		t.Fatalf("expected at least one trigger, got %d", report.TriggersFound)
	}
}

func TestAssessRiskCaseInsensitive(t *testing.T) {
	report := AssessRisk("I Want To KILL MYSELF", NewDistribution())
	if report.SelfHarmRisk != 0.9 {
		t.Fatalf("expected self harm risk 0.9, got %v", report.SelfHarmRisk)
	}
}

func TestAssessRiskDistressKeywords(t *testing.T) {
	report := AssessRisk("I feel overwhelmed and hopeless", NewDistribution())

	if report.SelfHarmRisk != 0 {
		t.Fatalf("expected self harm risk 0, got %v", report.SelfHarmRisk)
	}
	if report.SevereStressRisk != 0.7 {
		t.Fatalf("expected severe stress risk 0.7, got %v", report.SevereStressRisk)
	}
	if report.Assessment != AssessmentModerate {
		t.Fatalf("expected %q, got %q", AssessmentModerate, report.Assessment)
	}
	if report.TriggersFound != 0 {
		t.Fatalf("distress keywords must not count as triggers, got %d", report.TriggersFound)
	}
}

func TestAssessRiskEmotionScoresAlone(t *testing.T) {
	// 纯情绪得分只能推高压力风险，不触发自伤判定
	fused := NewDistribution()
	fused[Sad] = 1.0

	report := AssessRisk("", fused)
	if report.SevereStressRisk != 0.8 {
		t.Fatalf("expected severe stress risk 0.8, got %v", report.SevereStressRisk)
	}
	if report.SelfHarmRisk != 0 {
		t.Fatalf("expected self harm risk 0, got %v", report.SelfHarmRisk)
	}
	if report.Assessment != AssessmentModerate {
		t.Fatalf("expected %q, got %q", AssessmentModerate, report.Assessment)
	}
}

func TestAssessRiskTakesMaxOfStressSources(t *testing.T) {
	// 关键词0.7与情绪0.9*0.8=0.72取较大者
	fused := NewDistribution()
	fused[Sad] = 0.5
	fused[Anger] = 0.2
	fused[Fear] = 0.2

	report := AssessRisk("I feel hopeless", fused)
	if report.SevereStressRisk != 0.72 {
		t.Fatalf("expected severe stress risk 0.72, got %v", report.SevereStressRisk)
	}
}

func TestAssessRiskEmptyTextLowRisk(t *testing.T) {
	report := AssessRisk("", NewDistribution())
	if report.SelfHarmRisk != 0 || report.SevereStressRisk != 0 || report.TriggersFound != 0 {
		t.Fatalf("expected zero risk for empty input, got %+v", report)
	}
	if report.Assessment != AssessmentLow {
		t.Fatalf("expected %q, got %q", AssessmentLow, report.Assessment)
	}
}

func TestAssessRiskSelfHarmTakesPrecedence(t *testing.T) {
	// 自伤判定优先于压力判定
	fused := NewDistribution()
	fused[Sad] = 1.0

	report := AssessRisk("I am overwhelmed and want to end it all", fused)
	if report.Assessment != AssessmentHigh {
		t.Fatalf("expected %q, got %q", AssessmentHigh, report.Assessment)
	}
}

func TestAssessRiskCountsMultipleTriggers(t *testing.T) {
	report := AssessRisk("thoughts of suicide and self harm, I might hurt myself", NewDistribution())
	if report.TriggersFound != 3 {
		t.Fatalf("expected 3 triggers, got %d", report.TriggersFound)
	}
}

func TestAssessRiskClampsStressAtOne(t *testing.T) {
	// 未归一化的融合输入（3.0*0.8=2.4）被钳制在1.0
	fused := NewDistribution()
	fused[Sad] = 1.0
	fused[Anger] = 1.0
	fused[Fear] = 1.0

	report := AssessRisk("cant take it", fused)
	if report.SevereStressRisk != 1.0 {
		t.Fatalf("expected stress risk clamped to 1.0, got %v", report.SevereStressRisk)
	}
}

func TestAssessRiskIsDeterministic(t *testing.T) {
	fused := NewDistribution()
	fused[Fear] = 0.4
	fused[Sad] = 0.3

	first := AssessRisk("I feel helpless", fused)
	second := AssessRisk("I feel helpless", fused)
	if math.Float64bits(first.SelfHarmRisk) != math.Float64bits(second.SelfHarmRisk) ||
		math.Float64bits(first.SevereStressRisk) != math.Float64bits(second.SevereStressRisk) ||
		first.TriggersFound != second.TriggersFound ||
		first.Assessment != second.Assessment {
		t.Fatalf("assess risk not deterministic: %+v vs %+v", first, second)
	}
}

func TestEmergencyTriggeredBySelfHarm(t *testing.T) {
	report := RiskReport{SelfHarmRisk: 0.9, SevereStressRisk: 0}
	if !report.EmergencyTriggered(DefaultThresholds()) {
		t.Fatal("self harm risk 0.9 must trigger emergency with default thresholds")
	}
}

func TestEmergencyTriggeredBySevereStress(t *testing.T) {
	report := RiskReport{SelfHarmRisk: 0, SevereStressRisk: 0.75}
	if !report.EmergencyTriggered(DefaultThresholds()) {
		t.Fatal("severe stress risk 0.75 must trigger emergency with default thresholds")
	}
}

func TestEmergencyNotTriggeredAtThreshold(t *testing.T) {
	// 阈值判定为严格大于
	report := RiskReport{SelfHarmRisk: 0.8, SevereStressRisk: 0.7}
	if report.EmergencyTriggered(DefaultThresholds()) {
		t.Fatal("risk equal to threshold must not trigger emergency")
	}
}
