package metrics

import "testing"

func TestSummary(t *testing.T) {
	before := Summary()
	FramesRendered.Add(2)
	Ticks.Add(1)
	after := Summary()
	if after["frames_rendered"]-before["frames_rendered"] != 2 {
		t.Fatalf("frames_rendered 计数错误: %v -> %v", before, after)
	}
	if after["ticks"]-before["ticks"] != 1 {
		t.Fatalf("ticks 计数错误: %v -> %v", before, after)
	}
}
