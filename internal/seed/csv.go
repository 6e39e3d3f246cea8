//-------------------------------------------------------------------------
//
// QuickDrop Analytics Dashboard
//
// Copyright (c) 2025 - 2026, QuickDrop, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/quickdrop/quickdrop-dash/internal/logging"
)

// CSVConfig controls the operational CSV export.
type CSVConfig struct {
	// Rows is how many rows each operational table gets (categories are
	// always the ten fixed ones).
	Rows int
}

// WriteCSVs generates the nine operational seed files the upstream ETL
// loads into the source tables: clientes, tiendas, categorias,
// productos, repartidores, pedidos, detalle_pedido, entregas, pagos.
func WriteCSVs(dir string, f *Faker, cfg CSVConfig) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	n := cfg.Rows
	now := time.Now()

	writers := []struct {
		file  string
		write func(w *csv.Writer) error
	}{
		{"clientes.csv", func(w *csv.Writer) error {
			if err := w.Write([]string{"nombre", "correo", "telefono", "direccion", "ciudad", "fecha_registro"}); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := w.Write([]string{
					f.Name(),
					f.Email(),
					f.Phone(),
					f.Street(),
					f.City(),
					now.Format("2006-01-02"),
				}); err != nil {
					return err
				}
			}
			return nil
		}},
		{"tiendas.csv", func(w *csv.Writer) error {
			if err := w.Write([]string{"nombre", "tipo", "direccion", "ciudad", "estado"}); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := w.Write([]string{
					"Tienda " + f.LastName(),
					Choose(f, StoreTypes),
					f.Street(),
					f.City(),
					"true",
				}); err != nil {
					return err
				}
			}
			return nil
		}},
		{"categorias.csv", func(w *csv.Writer) error {
			if err := w.Write([]string{"nombre"}); err != nil {
				return err
			}
			for _, c := range Categories {
				if err := w.Write([]string{c}); err != nil {
					return err
				}
			}
			return nil
		}},
		{"productos.csv", func(w *csv.Writer) error {
			if err := w.Write([]string{"nombre", "descripcion", "precio", "stock", "id_tienda", "id_categoria"}); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := w.Write([]string{
					f.Word(),
					f.Sentence(6),
					fmt.Sprintf("%.2f", f.Price(1, 100)),
					strconv.Itoa(f.Int(5, 100)),
					strconv.Itoa(f.Int(1, n)),
					strconv.Itoa(f.Int(1, len(Categories))),
				}); err != nil {
					return err
				}
			}
			return nil
		}},
		{"repartidores.csv", func(w *csv.Writer) error {
			if err := w.Write([]string{"nombre", "telefono", "zona", "placa_moto", "disponible"}); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := w.Write([]string{
					f.Name(),
					f.Phone(),
					Choose(f, Zones),
					f.Plate(),
					"true",
				}); err != nil {
					return err
				}
			}
			return nil
		}},
		{"pedidos.csv", func(w *csv.Writer) error {
			if err := w.Write([]string{"id_cliente", "fecha_pedido", "estado"}); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := w.Write([]string{
					strconv.Itoa(f.Int(1, n)),
					f.PastDate(30).Format(time.RFC3339),
					Choose(f, OrderStatuses),
				}); err != nil {
					return err
				}
			}
			return nil
		}},
		{"detalle_pedido.csv", func(w *csv.Writer) error {
			if err := w.Write([]string{"id_pedido", "id_producto", "cantidad", "precio_unitario"}); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				if err := w.Write([]string{
					strconv.Itoa(f.Int(1, n)),
					strconv.Itoa(f.Int(1, n)),
					strconv.Itoa(f.Int(1, 5)),
					fmt.Sprintf("%.2f", f.Price(1, 100)),
				}); err != nil {
					return err
				}
			}
			return nil
		}},
		{"entregas.csv", func(w *csv.Writer) error {
			if err := w.Write([]string{"id_pedido", "id_repartidor", "fecha_entrega", "estado_entrega"}); err != nil {
				return err
			}
			for i := 1; i <= n; i++ {
				if err := w.Write([]string{
					strconv.Itoa(i),
					strconv.Itoa(f.Int(1, n)),
					f.PastDate(10).Format(time.RFC3339),
					Choose(f, DeliveryStatuses),
				}); err != nil {
					return err
				}
			}
			return nil
		}},
		{"pagos.csv", func(w *csv.Writer) error {
			if err := w.Write([]string{"id_pedido", "metodo_pago", "total", "estado_pago"}); err != nil {
				return err
			}
			for i := 1; i <= n; i++ {
				if err := w.Write([]string{
					strconv.Itoa(i),
					Choose(f, PaymentMethods),
					fmt.Sprintf("%.2f", f.Price(5, 300)),
					Choose(f, PaymentStatuses),
				}); err != nil {
					return err
				}
			}
			return nil
		}},
	}

	for _, out := range writers {
		if err := writeCSVFile(filepath.Join(dir, out.file), out.write); err != nil {
			return fmt.Errorf("failed to write %s: %w", out.file, err)
		}
		logging.Debug().Str("file", out.file).Msg("Wrote seed CSV")
	}

	logging.Info().
		Str("dir", dir).
		Int("rows", n).
		Msg("Generated operational seed CSVs")

	return nil
}

func writeCSVFile(path string, write func(w *csv.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := write(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
