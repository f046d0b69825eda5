// Observer registry keyed by event ids.
package evreg

// The zero register is empty and ready for use.
type Register struct {
	m map[int][]*Callback
}

// Remove is done via *Regist.Unregister().
func (reg *Register) Add(evId int, fn func(interface{})) *Regist {
	return reg.AddCallback(evId, &Callback{fn})
}

func (reg *Register) AddCallback(evId int, cb *Callback) *Regist {
	if reg.m == nil {
		reg.m = map[int][]*Callback{}
	}
	reg.m[evId] = append(reg.m[evId], cb)
	return &Regist{reg, evId, cb}
}

func (reg *Register) RemoveCallback(evId int, cb *Callback) {
	u := reg.m[evId]
	w := u[:0]
	for _, cb2 := range u {
		if cb2 != cb {
			w = append(w, cb2)
		}
	}
	if len(w) == 0 {
		delete(reg.m, evId)
		return
	}
	reg.m[evId] = w
}

//----------

// Returns number of callbacks done. Callbacks added while running are not called in this run.
func (reg *Register) RunCallbacks(evId int, ev interface{}) int {
	u := append([]*Callback(nil), reg.m[evId]...)
	for _, cb := range u {
		cb.F(ev)
	}
	return len(u)
}

// Number of registered callbacks for an event id.
func (reg *Register) NCallbacks(evId int) int {
	return len(reg.m[evId])
}

//----------

type Callback struct {
	F func(ev interface{})
}

//----------

type Regist struct {
	evReg *Register
	id    int
	cb    *Callback
}

func (reg *Regist) Unregister() {
	reg.evReg.RemoveCallback(reg.id, reg.cb)
}

//----------

// Utility to unregister a group of regists.
type Unregister struct {
	v []*Regist
}

func (unr *Unregister) Add(u ...*Regist) {
	unr.v = append(unr.v, u...)
}
func (unr *Unregister) UnregisterAll() {
	for _, e := range unr.v {
		e.Unregister()
	}
	unr.v = nil
}
