package sigchan

// Chan 是一个非阻塞、可合并的信号 channel。
// 用于通知事件发生但不传递数据：缓冲区满时新的 Emit 被丢弃，
// 接收方一次读取就代表"至少发生过一次"。
type Chan struct {
	c chan struct{}
}

// New 创建新的信号 channel，bufferSize 小于 1 时按 1 处理
func New(bufferSize int) *Chan {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Chan{
		c: make(chan struct{}, bufferSize),
	}
}

// Emit 发送信号（非阻塞），返回信号是否入队
func (c *Chan) Emit() bool {
	select {
	case c.c <- struct{}{}:
		return true
	default:
		return false
	}
}

// C 返回内部的 channel（用于 select）
func (c *Chan) C() <-chan struct{} {
	return c.c
}
