package nodedesc

// WarmStart is an opaque solver warm-start payload with a single owner.
// Once released its payload is gone; a released value must not be reused.
type WarmStart struct {
	payload  []byte
	released bool
}

// NewWarmStart adopts a copy of payload.
func NewWarmStart(payload []byte) *WarmStart {
	return &WarmStart{payload: append(make([]byte, 0, len(payload)), payload...)}
}

// Payload returns the opaque bytes (nil after Release).
func (w *WarmStart) Payload() []byte { return w.payload }

// Len returns the payload size in bytes.
func (w *WarmStart) Len() int { return len(w.payload) }

// Release drops the payload. Safe to call more than once.
func (w *WarmStart) Release() {
	w.payload = nil
	w.released = true
}

// Released reports whether Release was called.
func (w *WarmStart) Released() bool { return w.released }
