package pipeline

import "strings"

// 风险评估的判定文案
const (
	AssessmentLow      = "Low risk"
	AssessmentModerate = "Moderate risk"
	AssessmentHigh     = "High risk detected"
)

// 自伤关键词，命中任意一个即判定高自伤风险
var selfHarmKeywords = []string{
	"kill myself", "end it all", "suicide", "self harm", "hurt myself",
}

// 严重压力关键词
var distressKeywords = []string{
	"cant take it", "overwhelmed", "hopeless", "helpless", "no point",
}

// 高风险情绪标签，其融合得分之和参与压力风险计算
var highRiskEmotions = []Label{Sad, Anger, Fear}

// RiskReport 风险评估报告，随会话记录持久化，不单独存储
type RiskReport struct {
	SelfHarmRisk     float64 `json:"self_harm_risk"`
	SevereStressRisk float64 `json:"severe_stress_risk"`
	TriggersFound    int     `json:"triggers_found"`
	Assessment       string  `json:"assessment"`
}

// Thresholds 紧急响应阈值
type Thresholds struct {
	SelfHarm     float64
	SevereStress float64
}

// DefaultThresholds 默认紧急响应阈值
func DefaultThresholds() Thresholds {
	return Thresholds{SelfHarm: 0.8, SevereStress: 0.7}
}

// AssessRisk 对输入文本和融合情绪分布进行规则化风险评估。
// 纯函数：文本转小写后做子串匹配，自伤关键词命中得0.9；
// 压力关键词命中得0.7，并与高风险情绪得分之和乘以0.8取较大者；
// 两项得分均保留三位小数。判定时自伤检查优先于压力检查。
// 空文本时全部风险项归零，判定为低风险。
func AssessRisk(text string, fused Distribution) RiskReport {
	textLower := strings.ToLower(text)

	selfHarmRisk := 0.0
	severeStressRisk := 0.0
	triggersFound := 0

	// 检查自伤关键词，同时统计命中数量
	for _, keyword := range selfHarmKeywords {
		if strings.Contains(textLower, keyword) {
			selfHarmRisk = 0.9
			triggersFound++
		}
	}

	// 检查压力关键词
	for _, keyword := range distressKeywords {
		if strings.Contains(textLower, keyword) {
			severeStressRisk = 0.7
			break
		}
	}

	// 结合情绪状态：sad/anger/fear三项融合得分之和
	var highRiskEmotionScore float64
	for _, label := range highRiskEmotions {
		highRiskEmotionScore += fused.Get(label)
	}
	if emotionRisk := highRiskEmotionScore * 0.8; emotionRisk > severeStressRisk {
		severeStressRisk = emotionRisk
	}
	// 风险得分不超过1.0，未归一化的融合输入不能突破该上界
	if severeStressRisk > 1.0 {
		severeStressRisk = 1.0
	}

	// 判定顺序：自伤优先于压力
	assessment := AssessmentLow
	if selfHarmRisk > 0.5 {
		assessment = AssessmentHigh
	} else if severeStressRisk > 0.3 {
		assessment = AssessmentModerate
	}

	return RiskReport{
		SelfHarmRisk:     Round3(selfHarmRisk),
		SevereStressRisk: Round3(severeStressRisk),
		TriggersFound:    triggersFound,
		Assessment:       assessment,
	}
}

// EmergencyTriggered 根据配置阈值判定是否触发紧急响应。
// 紧急标志只能由该方法产生。
func (r RiskReport) EmergencyTriggered(t Thresholds) bool {
	return r.SelfHarmRisk > t.SelfHarm || r.SevereStressRisk > t.SevereStress
}
