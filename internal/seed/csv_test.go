package seed

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	return records
}

func TestWriteCSVs(t *testing.T) {
	dir := t.TempDir()
	f := NewFakerWithSeed(42)

	const rows = 20
	if err := WriteCSVs(dir, f, CSVConfig{Rows: rows}); err != nil {
		t.Fatalf("WriteCSVs failed: %v", err)
	}

	tests := []struct {
		file    string
		header  []string
		records int
	}{
		{"clientes.csv", []string{"nombre", "correo", "telefono", "direccion", "ciudad", "fecha_registro"}, rows},
		{"tiendas.csv", []string{"nombre", "tipo", "direccion", "ciudad", "estado"}, rows},
		{"categorias.csv", []string{"nombre"}, len(Categories)},
		{"productos.csv", []string{"nombre", "descripcion", "precio", "stock", "id_tienda", "id_categoria"}, rows},
		{"repartidores.csv", []string{"nombre", "telefono", "zona", "placa_moto", "disponible"}, rows},
		{"pedidos.csv", []string{"id_cliente", "fecha_pedido", "estado"}, rows},
		{"detalle_pedido.csv", []string{"id_pedido", "id_producto", "cantidad", "precio_unitario"}, rows},
		{"entregas.csv", []string{"id_pedido", "id_repartidor", "fecha_entrega", "estado_entrega"}, rows},
		{"pagos.csv", []string{"id_pedido", "metodo_pago", "total", "estado_pago"}, rows},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			records := readCSV(t, filepath.Join(dir, tt.file))

			if len(records) != tt.records+1 {
				t.Fatalf("Expected %d records plus header, got %d", tt.records, len(records))
			}
			header := records[0]
			if len(header) != len(tt.header) {
				t.Fatalf("Expected %d header columns, got %v", len(tt.header), header)
			}
			for i, col := range tt.header {
				if header[i] != col {
					t.Errorf("Header column %d = %q, want %q", i, header[i], col)
				}
			}
		})
	}
}

func TestWriteCSVsCategoriesAreFixed(t *testing.T) {
	dir := t.TempDir()
	f := NewFakerWithSeed(1)

	if err := WriteCSVs(dir, f, CSVConfig{Rows: 5}); err != nil {
		t.Fatalf("WriteCSVs failed: %v", err)
	}

	records := readCSV(t, filepath.Join(dir, "categorias.csv"))
	for i, want := range Categories {
		if records[i+1][0] != want {
			t.Errorf("Category %d = %q, want %q", i, records[i+1][0], want)
		}
	}
}
