package app

import "noted/internal/types"

const maxEventsPerTick = 64

// NoteStreamController holds the open push-event subscription for the
// mounted dashboard. Events are drained on the UI tick, bounded per tick so
// a burst cannot starve input handling; delivery order is preserved.
type NoteStreamController struct {
	events <-chan types.NoteEvent
	cancel func()
}

func NewNoteStreamController() *NoteStreamController {
	return &NoteStreamController{}
}

func (s *NoteStreamController) SetStream(ch <-chan types.NoteEvent, cancel func()) {
	if s == nil {
		return
	}
	s.Reset()
	s.events = ch
	s.cancel = cancel
}

func (s *NoteStreamController) Active() bool {
	return s != nil && s.events != nil
}

// Reset cancels and forgets the subscription. Must run on dashboard
// unmount so no event can touch state owned by a view that is gone.
func (s *NoteStreamController) Reset() {
	if s == nil {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = nil
	s.events = nil
}

// ConsumeTick applies queued events in delivery order, at most
// maxEventsPerTick of them, and reports how many were applied and whether
// the stream closed.
func (s *NoteStreamController) ConsumeTick(apply func(types.NoteEvent)) (applied int, closed bool) {
	if s == nil || s.events == nil {
		return 0, false
	}
	for i := 0; i < maxEventsPerTick; i++ {
		select {
		case event, ok := <-s.events:
			if !ok {
				s.events = nil
				s.cancel = nil
				return applied, true
			}
			apply(event)
			applied++
		default:
			return applied, false
		}
	}
	return applied, false
}
