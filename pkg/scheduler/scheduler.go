package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Scheduler выполняет отложенные одноразовые задачи, привязанные к ключу.
// Повторный Schedule по тому же ключу заменяет еще не сработавшую задачу,
// Cancel снимает ее. Таймеры живут в памяти процесса и не переживают рестарт.
type Scheduler struct {
	log handlerLogger

	mu     sync.Mutex
	timers map[string]*time.Timer
	wg     sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

func New(log handlerLogger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		log:    log,
		timers: make(map[string]*time.Timer),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Schedule ставит fn на выполнение через delay. Уже запланированная задача
// с тем же ключом отменяется и заменяется новой.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.timers[key]; ok {
		// снятый до срабатывания таймер сам wg.Done не вызовет
		if prev.Stop() {
			s.wg.Done()
		}
	}

	s.wg.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		defer s.wg.Done()

		s.mu.Lock()
		// опоздавший колбек замененного таймера не должен снести запись нового
		if current, ok := s.timers[key]; ok && current == timer {
			delete(s.timers, key)
		}
		s.mu.Unlock()

		if s.ctx.Err() != nil {
			return
		}
		s.execute(key, fn)
	})
	s.timers[key] = timer
}

// Cancel снимает запланированную задачу. Возвращает false, если задача
// уже сработала или не была запланирована.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[key]
	if !ok {
		return false
	}
	delete(s.timers, key)

	stopped := timer.Stop()
	if stopped {
		s.wg.Done()
	}
	return stopped
}

// Stop отменяет все запланированные задачи и дожидается завершения уже
// запущенных обработчиков.
func (s *Scheduler) Stop() {
	s.cancel()

	s.mu.Lock()
	for key, timer := range s.timers {
		if timer.Stop() {
			s.wg.Done()
		}
		delete(s.timers, key)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Scheduler) execute(key string, fn func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			s.log.Error("Scheduled task panic",
				logger.NewField("key", key),
				logger.NewField("recover", r),
				logger.NewField("stack", stack),
			)
		}
	}()

	if err := fn(s.ctx); err != nil {
		s.log.Error("Scheduled task failed",
			logger.NewField("key", key),
			logger.NewField("error", fmt.Errorf("scheduler: %w", err)),
		)
	}
}
