package sigchan

import "testing"

func TestEmit_Coalesces(t *testing.T) {
	c := New(0)
	if !c.Emit() {
		t.Fatalf("第一次 Emit 应该入队")
	}
	if c.Emit() {
		t.Fatalf("缓冲区已满时 Emit 应该被合并")
	}
	<-c.C()
	select {
	case <-c.C():
		t.Fatalf("合并后只应该有一个信号")
	default:
	}
}
