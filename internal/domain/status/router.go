package status

import "github.com/edumarques81/mixerd/internal/types"

// RouterTable is the dense input × output view of the routing relation.
type RouterTable [types.InputDeviceCount][types.OutputDeviceCount]bool

// Router holds the routing relation in two forms: a set of outputs per input
// and a boolean matrix. Both are private; every mutation goes through Route,
// which writes both, so table[i][o] is true exactly when o is in sets[i].
type Router struct {
	sets  [types.InputDeviceCount]types.OutputSet
	table RouterTable
}

// Route enables or disables the input → output connection.
func (r *Router) Route(in types.InputDevice, out types.OutputDevice, enabled bool) {
	if enabled {
		r.sets[in] = r.sets[in].With(out)
	} else {
		r.sets[in] = r.sets[in].Without(out)
	}
	r.table[in][out] = enabled
}

// IsRouted reports whether in feeds out.
func (r *Router) IsRouted(in types.InputDevice, out types.OutputDevice) bool {
	return r.sets[in].Contains(out)
}

// Outputs returns the outputs fed by in.
func (r *Router) Outputs(in types.InputDevice) types.OutputSet {
	return r.sets[in]
}

// Sets returns a copy of the per-input sets, ordered by input.
func (r *Router) Sets() [types.InputDeviceCount]types.OutputSet {
	return r.sets
}

// Table returns a copy of the matrix view.
func (r *Router) Table() RouterTable {
	return r.table
}

func (r *Router) consistent() bool {
	for _, in := range types.AllInputDevices() {
		for _, out := range types.AllOutputDevices() {
			if r.table[in][out] != r.sets[in].Contains(out) {
				return false
			}
		}
	}
	return true
}

// routerFromWire rebuilds a Router from both serialized views and rejects
// payloads where they disagree.
func routerFromWire(sets [types.InputDeviceCount]types.OutputSet, table RouterTable) (Router, error) {
	r := Router{sets: sets, table: table}
	for _, in := range types.AllInputDevices() {
		for _, out := range types.AllOutputDevices() {
			if table[in][out] != sets[in].Contains(out) {
				return Router{}, malformed("router_table", "%s → %s is %t in router_table but %t in router",
					in, out, table[in][out], sets[in].Contains(out))
			}
		}
	}
	return r, nil
}

// defaultRouter is the factory routing: every source reaches the headphones,
// broadcast mix and line out, except that the microphone is not monitored in
// the headphones. The microphone and samples also feed the chat mic, and the
// sampler records the microphone and chat.
func defaultRouter() Router {
	var r Router
	for _, in := range types.AllInputDevices() {
		r.Route(in, types.OutputHeadphones, true)
		r.Route(in, types.OutputBroadcastMix, true)
		r.Route(in, types.OutputLineOut, true)
	}
	r.Route(types.InputMicrophone, types.OutputHeadphones, false)
	r.Route(types.InputMicrophone, types.OutputChatMic, true)
	r.Route(types.InputMicrophone, types.OutputSampler, true)
	r.Route(types.InputChat, types.OutputSampler, true)
	r.Route(types.InputSamples, types.OutputChatMic, true)
	return r
}
