package game

import (
	"log"
	"sync"
	"time"
)

// Loop drives a Session on a wall-clock ticker without a window.
type Loop struct {
	session  *Session
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once

	// BeforeTick runs on the loop goroutine ahead of every tick. Drivers use
	// it to feed input and answer upgrade prompts.
	BeforeTick func(s *Session)
}

func NewLoop(session *Session, tickRate int) *Loop {
	return &Loop{
		session:  session,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) tick() {
	if l.BeforeTick != nil {
		l.BeforeTick(l.session)
	}
	l.session.Tick()
}
