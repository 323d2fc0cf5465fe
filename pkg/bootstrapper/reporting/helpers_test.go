package reporting_test

type describable struct {
	name        string
	description string
	calls       int
}

func (d *describable) Name() string {
	return d.name
}

func (d *describable) Describe() string {
	d.calls++

	return d.description
}

type plainExtension struct{}

type genericExtension[T any] struct {
	value T
}
