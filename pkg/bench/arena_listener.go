package bench

// Distributes arena events to several listeners
type ArenaListener[G any] struct {
	listeners []ListenerLike[G]
}

func NewArenaListener[G any](listeners ...ListenerLike[G]) *ArenaListener[G] {
	return &ArenaListener[G]{listeners: listeners}
}

func (al *ArenaListener[G]) Add(listener ListenerLike[G]) *ArenaListener[G] {
	al.listeners = append(al.listeners, listener)
	return al
}

func (al *ArenaListener[G]) OnMoveMade(stats ListenerStats[G]) {
	for _, l := range al.listeners {
		l.OnMoveMade(stats)
	}
}

func (al *ArenaListener[G]) OnFinishedGame(stats ListenerStats[G]) {
	for _, l := range al.listeners {
		l.OnFinishedGame(stats)
	}
}

func (al *ArenaListener[G]) OnFinishedWork(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

func (al *ArenaListener[G]) Summary(summary VersusSummaryInfo) {
	for _, l := range al.listeners {
		l.Summary(summary)
	}
}
