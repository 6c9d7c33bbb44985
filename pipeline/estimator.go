package pipeline

import (
	"math/rand"
	"strings"
	"sync"
)

// Estimator 单模态情绪估计器。输入为不透明的特征数据，
// 输出为七标签情绪分布。当前为占位实现，真实模型可在不改动
// 融合与风险逻辑的前提下替换
type Estimator interface {
	Estimate(data map[string]interface{}) Distribution
}

// FacialEstimator 面部表情情绪估计器占位实现。
// 数据中带有features字段时返回随机归一化分布（模拟模型推理），
// 否则返回全零分布。rand.Rand非并发安全，用互斥锁保护
type FacialEstimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFacialEstimator 构造面部估计器，随机源显式注入以便测试
func NewFacialEstimator(rng *rand.Rand) *FacialEstimator {
	return &FacialEstimator{rng: rng}
}

func (e *FacialEstimator) Estimate(data map[string]interface{}) Distribution {
	if _, ok := data["features"]; ok {
		e.mu.Lock()
		defer e.mu.Unlock()
		return randomDistribution(e.rng)
	}
	return NewDistribution()
}

// VoiceEstimator 语音情绪估计器占位实现，标记字段为audio_features
type VoiceEstimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewVoiceEstimator 构造语音估计器
func NewVoiceEstimator(rng *rand.Rand) *VoiceEstimator {
	return &VoiceEstimator{rng: rng}
}

func (e *VoiceEstimator) Estimate(data map[string]interface{}) Distribution {
	if _, ok := data["audio_features"]; ok {
		e.mu.Lock()
		defer e.mu.Unlock()
		return randomDistribution(e.rng)
	}
	return NewDistribution()
}

// randomDistribution 生成随机归一化分布，模拟模型输出
func randomDistribution(rng *rand.Rand) Distribution {
	d := NewDistribution()
	for _, label := range Labels {
		d[label] = rng.Float64()
	}
	d.Normalize()
	return d
}

// 文本情绪的关键词表，简单启发式，后续可换成NLP模型
var (
	positiveWords = []string{"happy", "good", "great", "excellent", "wonderful", "amazing"}
	negativeWords = []string{"sad", "bad", "terrible", "awful", "horrible", "angry"}
	fearWords     = []string{"scared", "afraid", "fear", "worried", "anxious"}
)

// TextEstimator 文本情绪估计器，基于关键词的确定性实现
type TextEstimator struct{}

// NewTextEstimator 构造文本估计器
func NewTextEstimator() *TextEstimator {
	return &TextEstimator{}
}

// Estimate 根据关键词命中为文本打情绪得分。
// 空文本返回全零分布；无任何关键词命中时回落为neutral=1.0
func (e *TextEstimator) Estimate(text string) Distribution {
	scores := NewDistribution()
	if text == "" {
		return scores
	}

	textLower := strings.ToLower(text)

	if containsAny(textLower, positiveWords) {
		scores[Happy] = 0.7
		scores[Neutral] = 0.3
	}

	if containsAny(textLower, negativeWords) {
		scores[Sad] = 0.5
		scores[Anger] = 0.3
		scores[Disgust] = 0.2
	}

	if containsAny(textLower, fearWords) {
		scores[Fear] = 0.8
		scores[Surprise] = 0.2
	}

	// 未识别出具体情绪时默认中性
	if scores.Sum() == 0 {
		scores[Neutral] = 1.0
	}

	return scores
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
