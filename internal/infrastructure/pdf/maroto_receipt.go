// Package pdf genera el comprobante de alquiler en PDF con Maroto v2.
//
// Layout A4:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Agencia  │  N° de comprobante       │
//	│  ──────────────────────────────────────────  │
//	│  CLIENTE: nombre                              │
//	│  VEHÍCULO: nombre + placa                     │
//	│  ──────────────────────────────────────────  │
//	│  PERÍODO: desde / hasta / días                │
//	│  TOTAL A PAGAR                                │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/jhoicas/rentacar-api/internal/application/usecase"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Asegura que MarotoReceiptGenerator implementa usecase.ReceiptGenerator.
var _ usecase.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator genera comprobantes de alquiler usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// Generate genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(rental *entity.RentalDetail, enterpriseName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de alquiler", true).
		WithAuthor(enterpriseName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rental, enterpriseName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(rental))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(periodRow(rental))
	m.AddRows(totalRow(rental))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: agencia (izq) y número de comprobante + fecha (der).
func headerRow(rental *entity.RentalDetail, enterpriseName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(enterpriseName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de alquiler", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("N° "+rental.ID, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(rental.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// partiesRow: cliente y vehículo.
func partiesRow(rental *entity.RentalDetail) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Cliente", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(rental.CustomerName, props.Text{Size: 10, Top: 5}),
		),
		col.New(6).Add(
			text.New("Vehículo", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(fmt.Sprintf("%s — %s", rental.VehicleName, rental.VehiclePlate), props.Text{Size: 10, Top: 5}),
		),
	)
}

// periodRow: fechas y días inclusivos.
func periodRow(rental *entity.RentalDetail) core.Row {
	days := entity.DaysInclusive(rental.StartDate, rental.EndDate)
	return row.New(12).Add(
		col.New(4).Add(
			text.New("Desde", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(rental.StartDate.Format(entity.DateLayout), props.Text{Size: 10, Top: 5}),
		),
		col.New(4).Add(
			text.New("Hasta", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(rental.EndDate.Format(entity.DateLayout), props.Text{Size: 10, Top: 5}),
		),
		col.New(4).Add(
			text.New("Días", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
			text.New(fmt.Sprintf("%d", days), props.Text{Size: 10, Top: 5}),
		),
	)
}

// totalRow: total a pagar en unidades.
func totalRow(rental *entity.RentalDetail) core.Row {
	total := float64(rental.TotalCents) / 100
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TOTAL A PAGAR", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorGray,
			}),
			text.New(fmt.Sprintf("$ %.2f", total), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right, Top: 5, Color: colorPrimary,
			}),
		),
	)
}
