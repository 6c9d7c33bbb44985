package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// 外部生成服务的单次调用超时。源系统未指定，这里取10秒：
// 超时视同调用失败，直接走兜底文案，保证响应延迟可预期
const defaultCallTimeout = 10 * time.Second

const systemPrompt = "You are a compassionate mental health support assistant. " +
	"Provide empathetic, supportive responses while being professional and caring. " +
	"Keep responses under 100 words."

// 兜底文案表，按主导情绪取文案，外部服务不可用时使用
var fallbackResponses = map[Label]string{
	Happy:    "I'm glad to see you're feeling positive! Remember to cherish these good moments.",
	Sad:      "I'm here with you during this difficult time. Your feelings are valid and important.",
	Anger:    "It's okay to feel angry. Would you like to talk about what's bothering you?",
	Fear:     "I sense you're feeling anxious. Remember, you're stronger than you think.",
	Surprise: "Life can be full of surprises. I'm here to help you process whatever comes up.",
	Disgust:  "I understand you're feeling upset. Let's work through this together.",
	Neutral:  "I'm here to listen whenever you're ready to share. How are you really feeling?",
}

const defaultFallbackResponse = "I'm here to listen and support you. How can I help you today?"

// Responder 共情回复生成器。model为nil时（未配置API Key）
// 始终使用兜底文案，与外部调用出错走同一条路径
type Responder struct {
	model   llms.Model
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// NewResponder 构造回复生成器，logger可为nil（此时不记录失败日志）
func NewResponder(model llms.Model, logger *zap.SugaredLogger) *Responder {
	return &Responder{
		model:   model,
		timeout: defaultCallTimeout,
		logger:  logger,
	}
}

// callResult 外部调用的显式结果类型，成功与失败二选一，
// 避免用异常式控制流决定兜底路径
type callResult struct {
	text string
	err  error
}

// Generate 根据输入文本和融合情绪分布生成共情回复。
// 主路径为单次外部生成调用（无重试）；未配置模型或调用出错时
// 返回按主导情绪取的兜底文案
func (r *Responder) Generate(ctx context.Context, text string, fused Distribution) string {
	if r.model == nil {
		return FallbackResponse(fused)
	}

	result := r.call(ctx, text, fused)
	if result.err != nil {
		if r.logger != nil {
			r.logger.Errorw("生成共情回复失败，使用兜底文案",
				"error", result.err,
				"dominantEmotion", fused.Dominant(),
			)
		}
		return FallbackResponse(fused)
	}

	return result.text
}

// call 执行单次外部生成调用
func (r *Responder) call(ctx context.Context, text string, fused Distribution) callResult {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(BuildPrompt(text, fused))},
		},
	}

	response, err := r.model.GenerateContent(callCtx, messages,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(150),
	)
	if err != nil {
		return callResult{err: err}
	}
	if len(response.Choices) == 0 {
		return callResult{err: fmt.Errorf("未生成有效内容")}
	}

	return callResult{text: strings.TrimSpace(response.Choices[0].Content)}
}

// BuildPrompt 构造用户侧提示词：主导情绪、得分超过0.1的情绪摘要
// （按规范顺序格式化为百分比）以及原始输入文本
func BuildPrompt(text string, fused Distribution) string {
	dominant := fused.Dominant()

	var parts []string
	for _, label := range Labels {
		if fused.Get(label) > 0.1 {
			parts = append(parts, fmt.Sprintf("%s: %.1f%%", label, fused.Get(label)*100))
		}
	}
	emotionSummary := strings.Join(parts, ", ")

	return fmt.Sprintf(`You are EmotionCV, an AI mental health support assistant.
User's emotional state: %s
Dominant emotion: %s (%.1f%%)

User's message: "%s"

Provide a supportive, empathetic, and non-judgmental response.
Be concise but meaningful. Offer comfort and validation.`,
		emotionSummary, dominant, fused.Get(dominant)*100, text)
}

// FallbackResponse 按主导情绪返回兜底文案，平手时主导情绪
// 由Dominant的规范顺序决定
func FallbackResponse(fused Distribution) string {
	if response, ok := fallbackResponses[fused.Dominant()]; ok {
		return response
	}
	return defaultFallbackResponse
}
