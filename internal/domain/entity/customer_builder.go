package entity

// Builder encadena pasos sobre un Customer conservando el primer error.
// Tras un fallo los pasos siguientes no se aplican.
//
//	c, err := entity.Build("John").Age(25).Email("john@test.com").Customer()
type Builder struct {
	c   Customer
	err error
}

// Build inicia la cadena con Named(name).
func Build(name string) *Builder {
	c, err := Named(name)
	return &Builder{c: c, err: err}
}

// Age aplica WithAge.
func (b *Builder) Age(age int) *Builder {
	return b.step(func(c Customer) (Customer, error) { return c.WithAge(&age) })
}

// ClearAge deja la edad ausente.
func (b *Builder) ClearAge() *Builder {
	return b.step(func(c Customer) (Customer, error) { return c.WithAge(nil) })
}

// Email aplica WithEmail.
func (b *Builder) Email(email string) *Builder {
	return b.step(func(c Customer) (Customer, error) { return c.WithEmail(&email) })
}

// ClearEmail deja el email ausente.
func (b *Builder) ClearEmail() *Builder {
	return b.step(func(c Customer) (Customer, error) { return c.WithEmail(nil) })
}

func (b *Builder) step(fn func(Customer) (Customer, error)) *Builder {
	if b.err != nil {
		return b
	}
	b.c, b.err = fn(b.c)
	return b
}

// Customer devuelve el valor construido o el primer error encontrado.
func (b *Builder) Customer() (Customer, error) {
	if b.err != nil {
		return Customer{}, b.err
	}
	return b.c, nil
}
