// package lazy defers a computation until its value is first read, then
// returns the cached result on every read after that.
package lazy

// Value holds a value that is computed on the first call to Get.
//
// Value is not safe for concurrent use. Use Sync when the first read may
// happen from multiple goroutines.
type Value[T any] struct {
	fn      func() T
	v       T
	loaded  bool
	calling bool
}

// New returns a Value that calls fn on the first read.
// It returns ErrNilInitializer if fn is nil.
func New[T any](fn func() T) (*Value[T], error) {
	if fn == nil {
		return nil, ErrNilInitializer
	}

	return &Value[T]{fn: fn}, nil
}

// MustNew is like New, but panics if fn is nil.
func MustNew[T any](fn func() T) *Value[T] {
	v, err := New(fn)
	if err != nil {
		panic(err)
	}

	return v
}

// Func wraps fn so that it is called at most once. The returned function
// shares the restrictions of Value.
func Func[T any](fn func() T) func() T {
	return MustNew(fn).Get
}

// Get returns the cached value, calling the initializer if this is the first
// read. If the initializer panics, the value stays unloaded and the next Get
// calls it again.
func (v *Value[T]) Get() T {
	if !v.loaded {
		v.load()
	}

	return v.v
}

// IsLoaded reports whether the initializer has completed.
func (v *Value[T]) IsLoaded() bool {
	return v.loaded
}

// Peek returns the cached value without calling the initializer. The boolean
// is false if the value has not been loaded yet.
func (v *Value[T]) Peek() (T, bool) {
	return v.v, v.loaded
}

func (v *Value[T]) load() {
	if v.calling {
		panic(ErrRecursiveLoad)
	}

	v.calling = true
	defer func() {
		v.calling = false
	}()

	// Assign only after fn returns, so a panic leaves v untouched.
	res := v.fn()
	v.v = res
	v.loaded = true
}
