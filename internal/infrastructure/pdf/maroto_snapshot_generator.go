// Package pdf implementa la exportación imprimible del snapshot del
// dashboard usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Resumen de Registros + fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: productos / marcas / bajo stock / sin stock / total   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Productos por departamento                           │
//	│  TABLA: Bajo stock (muestra)                                 │
//	│  TABLA: Productos recientes                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/registries-console/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 99, Green: 102, Blue: 241}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 239, Green: 68, Blue: 68}
)

// printer formatea enteros con separador de miles (es-CO, como la consola).
var printer = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSnapshotGenerator exporta un DashboardSnapshotDTO a PDF.
type MarotoSnapshotGenerator struct{}

// NewMarotoSnapshotGenerator construye el generador.
func NewMarotoSnapshotGenerator() *MarotoSnapshotGenerator { return &MarotoSnapshotGenerator{} }

// GenerateSnapshotPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSnapshotGenerator) GenerateSnapshotPDF(snapshot *dto.DashboardSnapshotDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Registros", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(snapshot))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(snapshot.Counts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Productos por departamento"))
	for _, r := range departmentRows(snapshot.ProductsByDepartment) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitle("Bajo stock (muestra)"))
	for _, r := range lowStockRows(snapshot.LowStockItems) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitle("Productos recientes"))
	for _, r := range recentRows(snapshot.RecentProducts) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(snapshot *dto.DashboardSnapshotDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RESUMEN DE REGISTROS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Snapshot "+snapshot.SnapshotID, props.Text{
				Size: 7, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+snapshot.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func kpiRow(counts dto.SnapshotCountsDTO) core.Row {
	kpi := func(label string, value string, c *props.Color) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: c, Top: 5}),
		)
	}
	return row.New(12).Add(
		kpi("Productos", printer.Sprintf("%d", counts.Products), colorPrimary),
		kpi("Marcas", printer.Sprintf("%d", counts.Brands), colorPrimary),
		kpi("Unidades stock", printer.Sprintf("%d", counts.TotalStockQty), colorPrimary),
		kpi("Bajo stock", printer.Sprintf("%d", counts.LowStock), colorDanger),
		kpi("Sin stock", printer.Sprintf("%d", counts.OutOfStock), colorDanger),
		kpi("Niveles precio", printer.Sprintf("%d", counts.PriceLevels), colorPrimary),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
		})),
	)
}

// departmentRows: una fila por grupo, de mayor a menor conteo (empates por
// nombre para que el documento sea determinista).
func departmentRows(groups map[string]int) []core.Row {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(groups))
	for name, count := range groups {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	rows := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New(e.name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(printer.Sprintf("%d", e.count), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}
	return rows
}

func lowStockRows(items []dto.LowStockItemDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin registros en bajo stock", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(7).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(printer.Sprintf("%d uds", it.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorDanger,
			})),
			col.New(2).Add(text.New(printer.Sprintf("mín %d", it.MinQuantity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			})),
		))
	}
	return rows
}

func recentRows(products []dto.RecentProductDTO) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		fecha := "—"
		if p.CreatedAt != nil {
			fecha = p.CreatedAt.Format("02/01/2006")
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(p.Code, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New("$"+p.SellingPrice.StringFixed(0), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(2).Add(text.New(fecha, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			})),
		))
	}
	return rows
}
