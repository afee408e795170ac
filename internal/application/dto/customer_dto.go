package dto

// CustomerInput datos de entrada de un cliente. nil = campo no suministrado.
type CustomerInput struct {
	Name  *string
	Age   *int
	Email *string
}

// CustomerView cliente validado listo para presentar.
type CustomerView struct {
	Name    string
	Age     *int
	Email   *string
	Summary string // Customer{name='..', age=.., email='..'}
}
