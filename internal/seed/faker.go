//-------------------------------------------------------------------------
//
// QuickDrop Analytics Dashboard
//
// Copyright (c) 2025 - 2026, QuickDrop, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package seed generates synthetic QuickDrop data: CSV seed files for
// the operational tables and direct loads into the warehouse star
// schema.
package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Reference data shared by the CSV seeder and the warehouse loader.
// Categories and payment methods are fixed so that dashboard filters
// always have matching rows.
var (
	Cities = []string{
		"Bogotá", "Medellín", "Cali", "Barranquilla", "Cartagena",
		"Bucaramanga", "Pereira", "Manizales", "Cúcuta", "Ibagué",
	}
	Categories = []string{
		"Comida", "Salud", "Oficina", "Electrónica", "Hogar",
		"Mascotas", "Libros", "Ropa", "Bebidas", "Limpieza",
	}
	StoreTypes = []string{
		"Restaurante", "Farmacia", "Papelería", "Ferretería",
		"Ropa", "Tecnología", "MiniMarket",
	}
	Zones            = []string{"Norte", "Sur", "Oriente", "Occidente", "Centro"}
	PaymentMethods   = []string{"efectivo", "tarjeta", "transferencia"}
	PaymentStatuses  = []string{"pendiente", "pagado", "fallido"}
	OrderStatuses    = []string{"pendiente", "aceptado", "entregado", "cancelado"}
	DeliveryStatuses = []string{"en camino", "entregado", "fallido"}
)

// Faker generates QuickDrop-flavoured fake data on top of gofakeit.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{faker: gofakeit.New(uint64(time.Now().UnixNano()))}
}

// NewFakerWithSeed creates a Faker with a fixed seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{faker: gofakeit.New(seed)}
}

// Name generates a full person name.
func (f *Faker) Name() string {
	return f.faker.Name()
}

// LastName generates a last name.
func (f *Faker) LastName() string {
	return f.faker.LastName()
}

// Email generates an email address.
func (f *Faker) Email() string {
	return f.faker.Email()
}

// Phone generates a phone number.
func (f *Faker) Phone() string {
	return f.faker.Phone()
}

// Street generates a street address.
func (f *Faker) Street() string {
	return f.faker.Street()
}

// City picks one of the fixed QuickDrop cities.
func (f *Faker) City() string {
	return Choose(f, Cities)
}

// Category picks one of the ten fixed product categories.
func (f *Faker) Category() string {
	return Choose(f, Categories)
}

// Word generates a single word.
func (f *Faker) Word() string {
	return f.faker.Word()
}

// Sentence generates a sentence of the given word count.
func (f *Faker) Sentence(wordCount int) string {
	return f.faker.Sentence(wordCount)
}

// Int generates a random integer in [min, max].
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 in [min, max].
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Price generates a price in [min, max] with two decimals.
func (f *Faker) Price(min, max float64) float64 {
	return f.faker.Price(min, max)
}

// PastDate generates a date within the last n days.
func (f *Faker) PastDate(n int) time.Time {
	now := time.Now()
	return f.faker.DateRange(now.AddDate(0, 0, -n), now)
}

// Plate generates a motorcycle plate like "A123B".
func (f *Faker) Plate() string {
	return fmt.Sprintf("%s%s%s",
		strings.ToUpper(f.faker.LetterN(1)),
		f.faker.DigitN(3),
		strings.ToUpper(f.faker.LetterN(1)),
	)
}

// DeliveryDuration generates the free-text delivery duration field the
// couriers type in. Most values carry a minute count somewhere in the
// text; some carry nothing parseable, mirroring production data.
func (f *Faker) DeliveryDuration() string {
	minutes := f.Int(10, 90)
	switch f.Int(0, 9) {
	case 0, 1, 2, 3:
		return fmt.Sprintf("%d min", minutes)
	case 4, 5:
		return fmt.Sprintf("%d minutos", minutes)
	case 6, 7:
		return fmt.Sprintf("entregado en %d min", minutes)
	case 8:
		return "sin datos"
	default:
		return ""
	}
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}
