package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/Clyding/EmotionCV/config"
	"github.com/Clyding/EmotionCV/pipeline"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// AnalyzeResult 单次分析的完整结果
type AnalyzeResult struct {
	Emotions           pipeline.Distribution
	AIResponse         string
	RiskAssessment     pipeline.RiskReport
	EmergencyTriggered bool
}

// AnalyzeService 情绪分析流水线编排服务。
// 各依赖显式注入，无全局状态；估计、融合、风险评估均为纯函数，
// 多个请求并发调用无需加锁
type AnalyzeService struct {
	facial     pipeline.Estimator
	voice      pipeline.Estimator
	text       *pipeline.TextEstimator
	weights    pipeline.Weights
	thresholds pipeline.Thresholds
	responder  *pipeline.Responder
}

// NewAnalyzeService 从配置和LLM客户端构造分析服务，
// 构造时校验融合权重之和为1.0
func NewAnalyzeService(conf config.Config, model llms.Model, logger *zap.SugaredLogger) (*AnalyzeService, error) {
	weights := pipeline.Weights{
		Facial: conf.FacialWeight,
		Voice:  conf.VoiceWeight,
		Text:   conf.TextWeight,
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	// 每个估计器独立的随机源，避免并发请求下的竞争
	now := time.Now().UnixNano()

	return &AnalyzeService{
		facial:  pipeline.NewFacialEstimator(rand.New(rand.NewSource(now))),
		voice:   pipeline.NewVoiceEstimator(rand.New(rand.NewSource(now + 1))),
		text:    pipeline.NewTextEstimator(),
		weights: weights,
		thresholds: pipeline.Thresholds{
			SelfHarm:     conf.SelfHarmThreshold,
			SevereStress: conf.SevereStressThreshold,
		},
		responder: pipeline.NewResponder(model, logger),
	}, nil
}

// Thresholds 返回服务使用的紧急响应阈值
func (s *AnalyzeService) Thresholds() pipeline.Thresholds {
	return s.thresholds
}

// Analyze 执行单次分析流水线：
// 逐模态估计 -> 加权融合 -> 生成回复 -> 风险评估 -> 紧急判定。
// 除回复生成的外部调用外全部为本地确定性计算
func (s *AnalyzeService) Analyze(ctx context.Context, textInput string, voiceData, facialData map[string]interface{}) AnalyzeResult {
	facialScores := s.facial.Estimate(facialData)
	voiceScores := s.voice.Estimate(voiceData)
	textScores := s.text.Estimate(textInput)

	fused := pipeline.Fuse(facialScores, voiceScores, textScores, s.weights)

	aiResponse := s.responder.Generate(ctx, textInput, fused)

	riskReport := pipeline.AssessRisk(textInput, fused)

	return AnalyzeResult{
		Emotions:           fused,
		AIResponse:         aiResponse,
		RiskAssessment:     riskReport,
		EmergencyTriggered: riskReport.EmergencyTriggered(s.thresholds),
	}
}
