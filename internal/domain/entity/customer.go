package entity

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/cespare/xxhash/v2"

	"github.com/jhoicas/validated-customer/internal/domain"
)

// Límites de validación del cliente.
const (
	NameMinLength = 2
	NameMaxLength = 20
	AgeMin        = 0
	AgeMax        = 90
)

const (
	fieldName  = "name"
	fieldAge   = "age"
	fieldEmail = "email"

	absentMarker = "null"
)

// Letras Unicode, espacios, guion, apóstrofo, punto y coma.
var nameCharset = regexp.MustCompile(`^[\p{L}\s\-'.,]+$`)

// Etiqueta de host: alfanuméricos y guiones, sin guion al inicio ni al final.
var hostLabel = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)

// Customer es un valor inmutable: nombre obligatorio, edad y email opcionales.
// Cada With* devuelve una copia nueva y validada; el receptor no cambia.
// Dos Customer son iguales (==) si coinciden nombre, edad y email.
//
// Solo Named y NamedFrom (y los With* sobre sus resultados) producen valores
// válidos. El valor cero Customer{} no pasó por la validación: tiene nombre
// vacío e IsZero lo reporta.
type Customer struct {
	name     string
	age      int
	hasAge   bool
	email    string
	hasEmail bool
}

// Named crea un cliente con el nombre dado, sin edad ni email.
func Named(name string) (Customer, error) {
	return NamedFrom(&name)
}

// NamedFrom es como Named pero acepta un nombre ausente (nil), que se
// rechaza con RequiredFieldError.
func NamedFrom(name *string) (Customer, error) {
	return newCustomer(name, nil, nil)
}

// WithAge devuelve una copia con la edad indicada. nil deja la edad ausente.
func (c Customer) WithAge(age *int) (Customer, error) {
	return newCustomer(&c.name, age, c.emailPtr())
}

// WithEmail devuelve una copia con el email indicado (recortado). nil borra el email.
func (c Customer) WithEmail(email *string) (Customer, error) {
	return newCustomer(&c.name, c.agePtr(), email)
}

func newCustomer(name *string, age *int, email *string) (Customer, error) {
	n, err := validateName(name)
	if err != nil {
		return Customer{}, err
	}
	if err := validateAge(age); err != nil {
		return Customer{}, err
	}
	e, err := validateEmail(email)
	if err != nil {
		return Customer{}, err
	}

	c := Customer{name: n}
	if age != nil {
		c.age, c.hasAge = *age, true
	}
	if e != nil {
		c.email, c.hasEmail = *e, true
	}
	return c, nil
}

func validateName(name *string) (string, error) {
	if name == nil {
		return "", &domain.RequiredFieldError{Field: fieldName}
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return "", domain.NewValidationError(fieldName, domain.KindEmpty, "el nombre no puede estar vacío")
	}
	if l := utf8.RuneCountInString(trimmed); l < NameMinLength || l > NameMaxLength {
		return "", domain.NewValidationError(fieldName, domain.KindLength,
			fmt.Sprintf("el nombre debe tener entre %d y %d caracteres, tiene %d", NameMinLength, NameMaxLength, l))
	}
	if !nameCharset.MatchString(trimmed) {
		return "", domain.NewValidationError(fieldName, domain.KindCharset, "caracteres inválidos en el nombre")
	}
	return trimmed, nil
}

func validateAge(age *int) error {
	if age == nil {
		return nil
	}
	if *age < AgeMin || *age > AgeMax {
		return domain.NewValidationError(fieldAge, domain.KindAgeRange,
			fmt.Sprintf("la edad debe estar entre %d y %d, se recibió %d", AgeMin, AgeMax, *age))
	}
	return nil
}

func validateEmail(email *string) (*string, error) {
	if email == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil, domain.NewValidationError(fieldEmail, domain.KindEmpty, "el email no puede estar vacío")
	}
	if !isEmail(trimmed) {
		return nil, domain.NewValidationError(fieldEmail, domain.KindFormat, "email inválido: "+trimmed)
	}
	return &trimmed, nil
}

// isEmail exige sintaxis local@dominio. El dominio debe ser un nombre de host:
// etiquetas alfanuméricas con guiones internos, sin punto final y con un TLD
// alfabético de al menos dos letras.
func isEmail(s string) bool {
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || !isHostname(s[at+1:]) {
		return false
	}
	return govalidator.IsEmail(s)
}

func isHostname(host string) bool {
	labels := strings.Split(host, ".")
	if len(labels) < 2 || len(host) > 253 {
		return false
	}
	for _, l := range labels {
		if !hostLabel.MatchString(l) {
			return false
		}
	}
	tld := labels[len(labels)-1]
	return len(tld) >= 2 && govalidator.IsAlpha(tld)
}

// Name devuelve el nombre recortado, tal como se recibió.
func (c Customer) Name() string { return c.name }

// Age devuelve la edad y si está presente.
func (c Customer) Age() (int, bool) { return c.age, c.hasAge }

// Email devuelve el email y si está presente.
func (c Customer) Email() (string, bool) { return c.email, c.hasEmail }

func (c Customer) agePtr() *int {
	if !c.hasAge {
		return nil
	}
	a := c.age
	return &a
}

func (c Customer) emailPtr() *string {
	if !c.hasEmail {
		return nil
	}
	e := c.email
	return &e
}

// IsZero indica si c es el valor cero, que no proviene de Named/NamedFrom.
func (c Customer) IsZero() bool { return c == Customer{} }

// Equal compara nombre, edad y email por valor.
func (c Customer) Equal(other Customer) bool {
	return c == other
}

// Hash es consistente con Equal.
func (c Customer) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(c.name)
	var buf [10]byte
	if c.hasAge {
		buf[0] = 1
		binary.BigEndian.PutUint64(buf[1:9], uint64(int64(c.age)))
	}
	if c.hasEmail {
		buf[9] = 1
	}
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(c.email)
	return d.Sum64()
}

// String con formato Customer{name='..', age=.., email='..'}; los campos
// ausentes se muestran como null.
func (c Customer) String() string {
	age, email := absentMarker, absentMarker
	if c.hasAge {
		age = strconv.Itoa(c.age)
	}
	if c.hasEmail {
		email = c.email
	}
	return fmt.Sprintf("Customer{name='%s', age=%s, email='%s'}", c.name, age, email)
}
