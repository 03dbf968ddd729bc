package adapters

import (
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"github.com/panjf2000/ants/v2"
)

type antsDispatcher struct {
	pool *ants.Pool
}

func NewAntsDispatcher(pool *ants.Pool) outbound.TaskDispatcher {
	return &antsDispatcher{pool: pool}
}

func (a *antsDispatcher) Submit(task func()) error {
	return a.pool.Submit(task)
}
