package pipeline

import "testing"

func TestNewDistributionHasAllSevenLabels(t *testing.T) {
	d := NewDistribution()
	if len(d) != 7 {
		t.Fatalf("expected 7 labels, got %d", len(d))
	}
	for _, label := range Labels {
		if _, ok := d[label]; !ok {
			t.Fatalf("missing label %s", label)
		}
	}
}

func TestGetMissingLabelIsZero(t *testing.T) {
	d := Distribution{Happy: 0.5}
	if got := d.Get(Sad); got != 0 {
		t.Fatalf("expected 0 for missing label, got %v", got)
	}
}

func TestDominantPicksHighestScore(t *testing.T) {
	d := NewDistribution()
	d[Sad] = 0.6
	d[Happy] = 0.3
	if got := d.Dominant(); got != Sad {
		t.Fatalf("expected sad, got %s", got)
	}
}

func TestDominantTieBreaksByCanonicalOrder(t *testing.T) {
	// fear排在happy之前，得分相同时fear胜出
	d := NewDistribution()
	d[Happy] = 0.5
	d[Fear] = 0.5
	if got := d.Dominant(); got != Fear {
		t.Fatalf("expected fear on tie, got %s", got)
	}
}

func TestDominantAllZeroReturnsFirstLabel(t *testing.T) {
	// 全零分布返回规范顺序首个标签，沿用下来的行为
	d := NewDistribution()
	if got := d.Dominant(); got != Anger {
		t.Fatalf("expected anger for all-zero distribution, got %s", got)
	}
}

func TestRound3HalfRoundsUp(t *testing.T) {
	// 0.4375和0.3125都是二进制可精确表示的中点值
	if got := Round3(0.4375); got != 0.438 {
		t.Fatalf("expected 0.438, got %v", got)
	}
	if got := Round3(0.3125); got != 0.313 {
		t.Fatalf("expected 0.313, got %v", got)
	}
	if got := Round3(0.1875); got != 0.188 {
		t.Fatalf("expected 0.188, got %v", got)
	}
}

func TestNormalizeZeroSumStaysZero(t *testing.T) {
	d := NewDistribution()
	d.Normalize()
	if d.Sum() != 0 {
		t.Fatalf("expected all-zero distribution to stay zero, got sum %v", d.Sum())
	}
}

func TestNormalizeSumsToOne(t *testing.T) {
	d := NewDistribution()
	d[Happy] = 2
	d[Sad] = 2
	d.Normalize()
	if got := d.Sum(); got < 0.999999 || got > 1.000001 {
		t.Fatalf("expected normalized sum 1, got %v", got)
	}
	if d[Happy] != 0.5 {
		t.Fatalf("expected happy 0.5, got %v", d[Happy])
	}
}
