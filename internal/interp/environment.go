package interp

import "github.com/goloxi/loxi/internal/object"

// slot is one named binding. A nil value means the name has been declared
// but never initialized: the uninitialized/undefined distinction spec.md
// insists on lives entirely in this nil-vs-non-nil split, never collapsed
// to a single sentinel.
type slot struct {
	value object.Object
}

// frame is one scope's set of bindings.
type frame map[string]*slot

// Environment is an ordered, non-empty stack of frames: the bottom frame is
// global, the top frame is the current innermost scope. It is the
// interpreter's only mutable state besides stdout/stderr.
type Environment struct {
	frames []frame
}

// NewEnvironment returns an Environment containing a single (global) frame.
func NewEnvironment() *Environment {
	return &Environment{frames: []frame{make(frame)}}
}

// Push adds a new innermost frame, entered on block/call entry.
func (e *Environment) Push() {
	e.frames = append(e.frames, make(frame))
}

// Pop removes the innermost frame. Popping the global frame is a
// programming error, not a user-facing one: callers always pair Push with
// Pop around a block or call, and the global frame is never inside such a
// pair.
func (e *Environment) Pop() {
	if len(e.frames) <= 1 {
		panic("interp: cannot pop the global environment frame")
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// top returns the innermost frame.
func (e *Environment) top() frame {
	return e.frames[len(e.frames)-1]
}

// Declare inserts name in the innermost frame, overwriting any same-named
// slot already there. A nil value declares name as uninitialized.
func (e *Environment) Declare(name string, value object.Object) {
	e.top()[name] = &slot{value: value}
}

// Assign updates the slot in the innermost frame containing name. It
// reports ok=false if name is not declared in any frame.
func (e *Environment) Assign(name string, value object.Object) (ok bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if s, found := e.frames[i][name]; found {
			s.value = value
			return true
		}
	}
	return false
}

// Resolve finds the innermost frame containing name. found reports whether
// name is declared anywhere on the stack; when found is true, initialized
// reports whether it has ever been assigned a value.
func (e *Environment) Resolve(name string) (value object.Object, initialized, found bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if s, ok := e.frames[i][name]; ok {
			return s.value, s.value != nil, true
		}
	}
	return nil, false, false
}

// TopFrameNames returns every name declared in the innermost frame, used by
// the `dir` built-in. Order is unspecified.
func (e *Environment) TopFrameNames() []string {
	top := e.top()
	names := make([]string, 0, len(top))
	for name := range top {
		names = append(names, name)
	}
	return names
}
