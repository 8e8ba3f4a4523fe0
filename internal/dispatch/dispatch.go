// Package dispatch routes inbound VT frames to registered application
// callbacks and correlates bring-up responses against the state machine's
// current wait state, grounded on spec.md §4.4.
package dispatch

import "github.com/agrielectronics/isovt/internal/protocol"

// SoftKeyEvent is delivered on function code 0x00.
type SoftKeyEvent struct {
	Activation   protocol.ActivationCode
	ObjectID     uint16
	ParentObjectID uint16
	KeyNumber    uint8
}

// ButtonEvent is delivered on function code 0x01.
type ButtonEvent struct {
	Activation     protocol.ActivationCode
	ObjectID       uint16
	ParentObjectID uint16
	KeyNumber      uint8
}

// PointingEvent is delivered on function code 0x02.
type PointingEvent struct {
	XPosition uint16
	YPosition uint16
	TouchState uint8
}

// SelectInputObjectEvent is delivered on function code 0x03.
type SelectInputObjectEvent struct {
	ObjectID uint16
	Selected bool
	Opened   bool
}

type (
	SoftKeyEventCallback          func(SoftKeyEvent)
	ButtonEventCallback           func(ButtonEvent)
	PointingEventCallback         func(PointingEvent)
	SelectInputObjectEventCallback func(SelectInputObjectEvent)
)

// Registry holds the four parallel callback lists the client exposes for
// registration. Each list keeps insertion order and permits duplicate
// registration of the same function value (nothing is deduplicated on
// add). Removal is by position in a list and deletes exactly one entry;
// callbacks cannot be removed by identity.
type Registry struct {
	softKey          []SoftKeyEventCallback
	button           []ButtonEventCallback
	pointing         []PointingEventCallback
	selectInputObject []SelectInputObjectEventCallback
}

func (r *Registry) AddSoftKey(cb SoftKeyEventCallback) {
	r.softKey = append(r.softKey, cb)
}

func (r *Registry) AddButton(cb ButtonEventCallback) {
	r.button = append(r.button, cb)
}

func (r *Registry) AddPointing(cb PointingEventCallback) {
	r.pointing = append(r.pointing, cb)
}

func (r *Registry) AddSelectInputObject(cb SelectInputObjectEventCallback) {
	r.selectInputObject = append(r.selectInputObject, cb)
}

// RemoveSoftKeyAt removes the softkey callback at index i in registration
// order; an out-of-range index leaves the list unchanged. Go cannot
// compare func values, so there is no removal by callback identity.
func (r *Registry) RemoveSoftKeyAt(i int) {
	r.softKey = removeAt(r.softKey, i)
}

func (r *Registry) RemoveButtonAt(i int) {
	r.button = removeAt(r.button, i)
}

func (r *Registry) RemovePointingAt(i int) {
	r.pointing = removeAt(r.pointing, i)
}

func (r *Registry) RemoveSelectInputObjectAt(i int) {
	r.selectInputObject = removeAt(r.selectInputObject, i)
}

func removeAt[T any](s []T, i int) []T {
	if i < 0 || i >= len(s) {
		return s
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

func (r *Registry) DispatchSoftKey(e SoftKeyEvent) {
	for _, cb := range r.softKey {
		cb(e)
	}
}

func (r *Registry) DispatchButton(e ButtonEvent) {
	for _, cb := range r.button {
		cb(e)
	}
}

func (r *Registry) DispatchPointing(e PointingEvent) {
	for _, cb := range r.pointing {
		cb(e)
	}
}

func (r *Registry) DispatchSelectInputObject(e SelectInputObjectEvent) {
	for _, cb := range r.selectInputObject {
		cb(e)
	}
}

// DecodeSoftKeyEvent decodes a function-code-0x00 frame.
func DecodeSoftKeyEvent(data []byte) SoftKeyEvent {
	return SoftKeyEvent{
		Activation:     protocol.ActivationCode(data[1]),
		ObjectID:       protocol.GetU16(data, 2),
		ParentObjectID: protocol.GetU16(data, 4),
		KeyNumber:      data[6],
	}
}

// DecodeButtonEvent decodes a function-code-0x01 frame.
func DecodeButtonEvent(data []byte) ButtonEvent {
	return ButtonEvent{
		Activation:     protocol.ActivationCode(data[1]),
		ObjectID:       protocol.GetU16(data, 2),
		ParentObjectID: protocol.GetU16(data, 4),
		KeyNumber:      data[6],
	}
}

// DecodePointingEvent decodes a function-code-0x02 frame.
func DecodePointingEvent(data []byte) PointingEvent {
	e := PointingEvent{
		XPosition: protocol.GetU16(data, 1),
		YPosition: protocol.GetU16(data, 3),
	}
	if len(data) > 5 {
		e.TouchState = data[5]
	}
	return e
}

// DecodeSelectInputObjectEvent decodes a function-code-0x03 frame.
func DecodeSelectInputObjectEvent(data []byte) SelectInputObjectEvent {
	return SelectInputObjectEvent{
		ObjectID: protocol.GetU16(data, 1),
		Selected: data[3] == 1,
		Opened:   data[4] == 1,
	}
}
