package pipeline

import "math"

// Label 表示情绪标签，固定为七分类
type Label string

const (
	Anger    Label = "anger"
	Fear     Label = "fear"
	Disgust  Label = "disgust"
	Happy    Label = "happy"
	Neutral  Label = "neutral"
	Sad      Label = "sad"
	Surprise Label = "surprise"
)

// Labels 标签的规范顺序，主导情绪的平手判定依赖该顺序
var Labels = []Label{Anger, Fear, Disgust, Happy, Neutral, Sad, Surprise}

// Distribution 情绪分布，七个标签到非负得分的映射
type Distribution map[Label]float64

// NewDistribution 构造全零分布，七个标签全部就位
func NewDistribution() Distribution {
	d := make(Distribution, len(Labels))
	for _, label := range Labels {
		d[label] = 0.0
	}
	return d
}

// Get 返回指定标签的得分，缺失的标签按0处理
func (d Distribution) Get(label Label) float64 {
	return d[label]
}

// Sum 返回分布中所有得分之和
func (d Distribution) Sum() float64 {
	var total float64
	for _, label := range Labels {
		total += d[label]
	}
	return total
}

// Normalize 将分布归一化到和为1，总和为0时保持全零
func (d Distribution) Normalize() {
	total := d.Sum()
	if total == 0 {
		return
	}
	for _, label := range Labels {
		d[label] = d[label] / total
	}
}

// Dominant 返回主导情绪：按规范顺序单次线性扫描取最大值，
// 得分相同的标签中规范顺序靠前者胜出。全零分布返回首个标签（anger），
// 这是沿用下来的行为，调用方不应依赖全零输入有特殊含义。
func (d Distribution) Dominant() Label {
	best := Labels[0]
	bestScore := d[best]
	for _, label := range Labels[1:] {
		if d[label] > bestScore {
			best = label
			bestScore = d[label]
		}
	}
	return best
}

// Round3 保留三位小数。采用四舍五入（math.Round对0.5向远离零方向取整，
// 本系统所有得分非负，因此等价于round-half-up）
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
