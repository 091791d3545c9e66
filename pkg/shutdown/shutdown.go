package shutdown

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "shutdown")

// Handler 关闭处理函数
type Handler func(ctx context.Context)

type namedHandler struct {
	name string
	fn   Handler
}

// Manager 优雅关闭管理器
type Manager struct {
	callbacks []namedHandler
	mu        sync.Mutex
	done      bool
}

// NewManager 创建新的关闭管理器
func NewManager() *Manager {
	return &Manager{}
}

// OnShutdown 注册关闭回调
func (m *Manager) OnShutdown(name string, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, namedHandler{name: name, fn: handler})
}

// Shutdown 并发执行所有关闭回调（阻塞调用，只执行一次）。
// ctx 应该带超时，超时后不再等待未完成的回调。返回是否全部按时完成。
func (m *Manager) Shutdown(ctx context.Context) bool {
	m.mu.Lock()
	if m.done {
		m.mu.Unlock()
		return true
	}
	m.done = true
	callbacks := m.callbacks
	m.mu.Unlock()

	if len(callbacks) == 0 {
		return true
	}

	log.Infof("开始优雅关闭，共 %d 个回调", len(callbacks))

	var wg sync.WaitGroup
	wg.Add(len(callbacks))
	for _, cb := range callbacks {
		go func(h namedHandler) {
			defer wg.Done()
			h.fn(ctx)
			log.WithField("handler", h.name).Debug("关闭回调完成")
		}(cb)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("所有关闭回调已完成")
		return true
	case <-ctx.Done():
		log.Warnf("关闭超时: %v", ctx.Err())
		return false
	}
}
