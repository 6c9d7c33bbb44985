package services

import (
	"context"
	"testing"

	"github.com/Clyding/EmotionCV/config"
	"github.com/Clyding/EmotionCV/pipeline"
)

func testConfig() config.Config {
	return config.Config{
		SelfHarmThreshold:     0.8,
		SevereStressThreshold: 0.7,
		FacialWeight:          0.4,
		VoiceWeight:           0.3,
		TextWeight:            0.3,
	}
}

func TestNewAnalyzeServiceRejectsBadWeights(t *testing.T) {
	conf := testConfig()
	conf.FacialWeight = 0.9
	if _, err := NewAnalyzeService(conf, nil, nil); err == nil {
		t.Fatal("expected error for weights not summing to 1.0")
	}
}

func TestAnalyzeSelfHarmTriggersEmergency(t *testing.T) {
	service, err := NewAnalyzeService(testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := service.Analyze(context.Background(), "I want to kill myself", nil, nil)

	if result.RiskAssessment.SelfHarmRisk != 0.9 {
		t.Fatalf("expected self harm risk 0.9, got %v", result.RiskAssessment.SelfHarmRisk)
	}
	if result.RiskAssessment.Assessment != pipeline.AssessmentHigh {
		t.Fatalf("expected high risk assessment, got %q", result.RiskAssessment.Assessment)
	}
	if !result.EmergencyTriggered {
		t.Fatal("expected emergency to be triggered")
	}
}

func TestAnalyzeDistressStaysBelowEmergencyThreshold(t *testing.T) {
	service, err := NewAnalyzeService(testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 无情绪关键词的压力文本：关键词得0.7，未严格超过阈值0.7
	result := service.Analyze(context.Background(), "I feel overwhelmed and hopeless", nil, nil)

	if result.RiskAssessment.SevereStressRisk != 0.7 {
		t.Fatalf("expected severe stress risk 0.7, got %v", result.RiskAssessment.SevereStressRisk)
	}
	if result.RiskAssessment.Assessment != pipeline.AssessmentModerate {
		t.Fatalf("expected moderate assessment, got %q", result.RiskAssessment.Assessment)
	}
	if result.EmergencyTriggered {
		t.Fatal("stress risk equal to threshold must not trigger emergency")
	}
}

func TestAnalyzeFallbackResponseWithoutModel(t *testing.T) {
	service, err := NewAnalyzeService(testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 无语音/面部数据时只有文本模态参与：中性1.0融合后neutral=0.3为主导
	result := service.Analyze(context.Background(), "the meeting is at noon", nil, nil)

	if result.Emotions[pipeline.Neutral] != 0.3 {
		t.Fatalf("expected fused neutral 0.3, got %v", result.Emotions[pipeline.Neutral])
	}
	if result.AIResponse == "" {
		t.Fatal("expected fallback response, got empty string")
	}
	if result.Emotions.Dominant() != pipeline.Neutral {
		t.Fatalf("expected neutral dominant, got %s", result.Emotions.Dominant())
	}
}

func TestAnalyzeMarkerFieldsSelectNonTrivialEstimates(t *testing.T) {
	service, err := NewAnalyzeService(testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	withMarkers := service.Analyze(context.Background(), "",
		map[string]interface{}{"audio_features": "blob"},
		map[string]interface{}{"features": "blob"},
	)
	withoutMarkers := service.Analyze(context.Background(), "", nil, nil)

	if withMarkers.Emotions.Sum() == 0 {
		t.Fatal("expected non-zero fused distribution when marker fields present")
	}
	if withoutMarkers.Emotions.Sum() != 0 {
		t.Fatalf("expected all-zero fused distribution without any signal, got %v", withoutMarkers.Emotions)
	}
	if len(withMarkers.Emotions) != 7 {
		t.Fatalf("fused distribution must carry all 7 labels, got %d", len(withMarkers.Emotions))
	}
}

func TestAnalyzeEmptyInputIsLowRisk(t *testing.T) {
	service, err := NewAnalyzeService(testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := service.Analyze(context.Background(), "", nil, nil)

	if result.RiskAssessment.Assessment != pipeline.AssessmentLow {
		t.Fatalf("expected low risk for empty input, got %q", result.RiskAssessment.Assessment)
	}
	if result.EmergencyTriggered {
		t.Fatal("empty input must not trigger emergency")
	}
}
