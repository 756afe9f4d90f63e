package editor

import (
	"slices"
	"sync"
)

// Subscribe registers fn to run after every visible change. The returned
// func removes it. Observers must not call Handle.
func (e *Editor) Subscribe(fn func()) (cancel func()) {
	id := e.nextObserver
	e.nextObserver++
	e.observers = append(e.observers, subscriber{id: id, fn: fn})

	return func() {
		// Copy on write: a notify in progress keeps ranging over the old slice
		e.observers = slices.DeleteFunc(slices.Clone(e.observers), func(s subscriber) bool {
			return s.id == id
		})
	}
}

func (e *Editor) notify() {
	e.notifying = true
	defer func() { e.notifying = false }()

	for _, o := range e.observers {
		o.fn()
	}
}

// KeySource delivers key presses from the host, e.g. a window's keyboard
// callback. SubscribeKeys installs handler and returns the func that
// removes it again.
type KeySource interface {
	SubscribeKeys(handler func(KeyDown)) (unsubscribe func())
}

// Mount subscribes the editor to src for as long as it is shown. The
// returned unmount releases the subscription; it is safe to call more than
// once, so hosts can both defer it and call it on an explicit close.
func (e *Editor) Mount(src KeySource) (unmount func()) {
	if e.unmount != nil {
		panic("editor: already mounted")
	}

	unsubscribe := src.SubscribeKeys(func(k KeyDown) {
		e.Handle(k)
	})
	e.log.Debug("editor mounted")

	var once sync.Once
	e.unmount = func() {
		once.Do(func() {
			unsubscribe()
			e.unmount = nil
			e.log.Debug("editor unmounted")
		})
	}
	return e.unmount
}

// Mounted reports whether a key subscription is active
func (e *Editor) Mounted() bool {
	return e.unmount != nil
}
