package openstate

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval период обновления индикатора открыт/закрыт
const DefaultInterval = 60 * time.Second

const (
	resultOK      = "ok"
	resultSkipped = "skipped"
)

// Poller периодически обновляет признак "магазин открыт"
// Одновременно выполняется не больше одного обновления: обновление,
// запущенное во время другого, пропускается, и побеждает значение уже идущего
type Poller struct {
	checker  OpenStateChecker
	interval time.Duration
	recorder *Recorder
	logger   Logger
	now      func() time.Time

	inFlight atomic.Bool

	mu          sync.RWMutex
	isOpen      bool
	lastChecked time.Time
}

// NewPoller создает поллер. interval <= 0 означает DefaultInterval, recorder может быть nil
func NewPoller(checker OpenStateChecker, interval time.Duration, recorder *Recorder, logger Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Poller{
		checker:  checker,
		interval: interval,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Run обновляет состояние сразу и затем раз в interval до отмены контекста
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("OpenStatePoller: started, interval=%s", p.interval)
	p.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("OpenStatePoller: stopped")
			return ctx.Err()
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh запрашивает состояние и сохраняет его
// Возвращает false, если обновление пропущено, потому что другое еще выполняется
func (p *Poller) Refresh(ctx context.Context) bool {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.Warn("OpenStatePoller: previous refresh still in flight, skipping")
		p.observe(resultSkipped)
		return false
	}
	defer p.inFlight.Store(false)

	open := p.checker.IsOpenNow(ctx)

	p.mu.Lock()
	changed := open != p.isOpen || p.lastChecked.IsZero()
	p.isOpen = open
	p.lastChecked = p.now()
	p.mu.Unlock()

	if changed {
		p.logger.Info("OpenStatePoller: store is now open=%t", open)
	}

	if p.recorder != nil && p.recorder.StoreOpen != nil {
		if open {
			p.recorder.StoreOpen.Set(1)
		} else {
			p.recorder.StoreOpen.Set(0)
		}
	}
	p.observe(resultOK)

	return true
}

// IsOpen возвращает последнее известное состояние; до первого обновления - false
func (p *Poller) IsOpen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isOpen
}

// LastChecked возвращает момент последнего успешного обновления (нулевое время, если обновлений не было)
func (p *Poller) LastChecked() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastChecked
}

func (p *Poller) observe(result string) {
	if p.recorder == nil || p.recorder.Refreshes == nil {
		return
	}
	p.recorder.Refreshes.WithLabelValues(result).Inc()
}
