/*
   Copyright 2021 Google LLC

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       https://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package knobkit

// WatchFunc is used for callbacks for changes to a WatchedFloat.
type WatchFunc func(float64)

// WatchedFloat wraps a float64 with zero or more callback watchers;
// whenever the value changes (via Set), all of the callbacks will be
// called.  Knobs store their value in a WatchedFloat so that turning
// a knob can update displays and trigger whatever underlying
// behaviour the value drives.
type WatchedFloat struct {
	value     float64
	notifiers []WatchFunc
}

// NewWatchedFloat creates a new WatchedFloat with the specified initial value.
func NewWatchedFloat(value float64) *WatchedFloat {
	return &WatchedFloat{
		value:     value,
		notifiers: make([]WatchFunc, 0),
	}
}

// Get returns the current value of the WatchedFloat.
func (w *WatchedFloat) Get() float64 {
	return w.value
}

// Set updates the current value of the WatchedFloat and calls all
// callback functions added via AddWatcher.
func (w *WatchedFloat) Set(value float64) {
	w.value = value
	for _, f := range w.notifiers {
		f(value)
	}
}

// AddWatcher adds a callback function for this WatchedFloat.  The
// callback will be called whenever Set is called.
func (w *WatchedFloat) AddWatcher(f WatchFunc) {
	w.notifiers = append(w.notifiers, f)
}
