package model

// Decorator enriches a context after the builder has produced it and before
// template selection. Decorators may add keys or tighten flags; they must not
// introduce placeholder values.
type Decorator interface {
	Decorate(Context) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(Context) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(ctx Context) error {
	return fn(ctx)
}
