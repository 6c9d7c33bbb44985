package pipeline

import (
	"fmt"
	"math"
)

// Weights 各模态的可靠性权重，三者之和必须为1.0
type Weights struct {
	Facial float64
	Voice  float64
	Text   float64
}

// DefaultWeights 默认模态权重
func DefaultWeights() Weights {
	return Weights{Facial: 0.4, Voice: 0.3, Text: 0.3}
}

// Validate 校验权重之和是否为1.0
func (w Weights) Validate() error {
	sum := w.Facial + w.Voice + w.Text
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("模态权重之和必须为1.0，当前为%v", sum)
	}
	return nil
}

// Fuse 将三个模态的情绪分布按权重加权融合为单个分布。
// 纯函数：每个标签的融合得分为各模态得分乘以对应权重之和，保留三位小数；
// 输入中缺失的标签按0处理。融合后不再归一化（权重之和为1，
// 输入各自归一化时输出之和不超过1）。三路输入全零时输出全零，
// 不做均匀分布兜底，这是沿用下来的行为。
func Fuse(facial, voice, text Distribution, w Weights) Distribution {
	fused := NewDistribution()
	for _, label := range Labels {
		score := facial.Get(label)*w.Facial +
			voice.Get(label)*w.Voice +
			text.Get(label)*w.Text
		fused[label] = Round3(score)
	}
	return fused
}
