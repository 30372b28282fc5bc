// Package pdf genera la ficha imprimible de un contrato (una página A4):
// encabezado con número y estado, bloque del cliente y tabla de condiciones.
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/tu-usuario/clientes-api/internal/application/contracts"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ contracts.SummaryPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa contracts.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateContractPDF genera la ficha del contrato y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateContractPDF(
	_ context.Context,
	c *entity.Contract,
	owner *entity.ClientInfo,
	ownerKind string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de contrato", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(c))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(ownerRow(owner, ownerKind))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range detailRows(c) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + ID del contrato (izq) y estado de vigencia (der).
func headerRow(c *entity.Contract) core.Row {
	estado := "VIGENTE"
	if !c.ActiveAt(time.Now()) {
		estado = "TERMINADO"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Contrato", props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("N° "+c.ID, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(estado, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 4, Color: colorPrimary}),
		),
	)
}

// ownerRow: tipo de cliente y datos de contacto del perfil.
func ownerRow(owner *entity.ClientInfo, ownerKind string) core.Row {
	name, contact := "(cliente no disponible)", ""
	if owner != nil {
		name = owner.Name
		contact = owner.Email
		if owner.Phone != "" {
			if contact != "" {
				contact += " · "
			}
			contact += owner.Phone
		}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(ownerKind+": "+name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New(contact, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// detailRows: condiciones del contrato, una por línea.
func detailRows(c *entity.Contract) []core.Row {
	const dateFmt = "02/01/2006"
	end := "—"
	if c.EndDate != nil {
		end = c.EndDate.Format(dateFmt)
	}
	pairs := [][2]string{
		{"Inicio de cobertura", c.StartDate.Format(dateFmt)},
		{"Fin de cobertura", end},
		{"Costo", c.CostAmount.StringFixed(2) + " CHF"},
		{"Creado", c.CreationDate.Format(dateFmt)},
		{"Última actualización", c.UpdateDate.Format(dateFmt)},
	}
	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(7).Add(
			col.New(5).Add(text.New(p[0], props.Text{Size: 9, Color: colorGray})),
			col.New(7).Add(text.New(p[1], props.Text{Size: 9})),
		))
	}
	return rows
}
