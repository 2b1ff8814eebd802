package lazy

import "errors"

var (
	// ErrNilInitializer is returned when a lazy value is constructed without
	// an initializer.
	ErrNilInitializer = errors.New("lazy: nil initializer")

	// ErrRecursiveLoad is the panic value when an initializer reads the value
	// it is initializing.
	ErrRecursiveLoad = errors.New("lazy: recursive load")
)
