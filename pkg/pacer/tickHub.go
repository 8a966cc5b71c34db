package pacer

import (
	"sync"

	"github.com/nm-morais/go-pacer/pkg/errors"
	"github.com/nm-morais/go-pacer/pkg/logs"
	"github.com/panjf2000/ants"
	log "github.com/sirupsen/logrus"
)

const tickHubCaller = "TickHub"

// TickHandler receives the measured length of the interval that just
// finished, in milliseconds.
type TickHandler func(frameTimeMs float64)

// TickHub drives a Pacer and fans each tick out to the registered handlers.
// Handlers run on a shared worker pool, so a slow handler delays other
// handlers' ticks but never the pacing loop itself.
type TickHub interface {
	AddListener(id int, handler TickHandler)
	RemoveListener(id int)
	Run()
	Stop()
	Logger() *log.Logger
}

type tickHub struct {
	pacer          *Pacer
	pool           *ants.Pool
	listenersMutex sync.RWMutex
	listeners      map[int]TickHandler
	quit           chan struct{}
	logger         *log.Logger
}

func NewTickHub(p *Pacer, poolSize int) (TickHub, errors.Error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, errors.PreconditionError(err.Error(), tickHubCaller)
	}
	return &tickHub{
		pacer:     p,
		pool:      pool,
		listeners: map[int]TickHandler{},
		quit:      make(chan struct{}),
		logger:    logs.NewLogger(tickHubCaller),
	}, nil
}

func (h *tickHub) AddListener(id int, handler TickHandler) {
	h.listenersMutex.Lock()
	defer h.listenersMutex.Unlock()
	h.listeners[id] = handler
}

func (h *tickHub) RemoveListener(id int) {
	h.listenersMutex.Lock()
	defer h.listenersMutex.Unlock()
	delete(h.listeners, id)
}

// Run paces ticks until Stop is called. It blocks; callers wanting a
// background hub launch it on its own goroutine.
func (h *tickHub) Run() {
	h.pacer.Start()
	for {
		select {
		case <-h.quit:
			return
		default:
		}
		frameTime := h.pacer.Pace()
		h.deliver(frameTime)
	}
}

func (h *tickHub) deliver(frameTime float64) {
	h.listenersMutex.RLock()
	defer h.listenersMutex.RUnlock()
	for id, handler := range h.listeners {
		handler := handler
		if err := h.pool.Submit(func() { handler(frameTime) }); err != nil {
			h.logger.Warnf("Dropping tick for listener %d: %s", id, err)
		}
	}
}

func (h *tickHub) Stop() {
	close(h.quit)
	h.pool.Release()
}

func (h *tickHub) Logger() *log.Logger {
	return h.logger
}
