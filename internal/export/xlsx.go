// Package export gera a planilha do dashboard de um período
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/hk-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/hk-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/hk-dashboard-api/internal/viewstate"
	"github.com/vfg2006/hk-dashboard-api/pkg/utils"
)

const (
	SheetSummary  = "Resumo"
	SheetStores   = "Lojas"
	SheetStagnant = "Estoque parado"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ErrNothingToExport = errors.New("export: dashboard indisponível")

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// FileName segue o padrão hk-dashboard-<período>.xlsx
func FileName(view *dashboard.View) string {
	return fmt.Sprintf("hk-dashboard-%s.xlsx", view.Period)
}

// Write gera a planilha e grava no writer
func (e *Exporter) Write(w io.Writer, view *dashboard.View, state viewstate.State) error {
	f, err := e.Export(view, state)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// Export monta as três abas. A aba de lojas respeita a categoria selecionada na tela.
func (e *Exporter) Export(view *dashboard.View, state viewstate.State) (*excelize.File, error) {
	if !view.Available() || view.Derived == nil || view.Classified == nil {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	if err := writeRows(f, SheetSummary, summaryRows(view), headerStyle); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetStores); err != nil {
		return nil, err
	}
	if err := writeRows(f, SheetStores, storeRows(state.FilterStores(view.Classified.Stores)), headerStyle); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetStagnant); err != nil {
		return nil, err
	}
	if err := writeRows(f, SheetStagnant, stagnantRows(view.Classified.Inventory), headerStyle); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(SheetSummary, "A", "A", 28)
	_ = f.SetColWidth(SheetSummary, "B", "E", 16)
	_ = f.SetColWidth(SheetStores, "A", "B", 20)
	_ = f.SetColWidth(SheetStores, "C", "L", 14)
	_ = f.SetColWidth(SheetStagnant, "A", "H", 16)

	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("export: aba %s linha %d: %w", sheet, i+1, err)
		}
	}
	return f.SetRowStyle(sheet, 1, 1, headerStyle)
}

func percent(v float64) string {
	return utils.FormatPercent(v, 1)
}

func summaryRows(view *dashboard.View) [][]any {
	d := view.Derived
	rows := [][]any{
		{"Indicador", "HK", "MC", "Total"},
		{"Período", view.Period.String(), "", string(view.Status)},
		{"Venda etiqueta", d.Sales.HK.TagSales, d.Sales.MC.TagSales, d.Sales.Total.TagSales},
		{"Venda líquida", d.Sales.HK.NetSales, d.Sales.MC.NetSales, d.Sales.Total.NetSales},
		{"Desconto", percent(d.Sales.HK.DiscountRate), percent(d.Sales.MC.DiscountRate), percent(d.Sales.Total.DiscountRate)},
		{"YOY venda líquida", d.Sales.HK.Yoy.Label(), d.Sales.MC.Yoy.Label(), d.Sales.Total.Yoy.Label()},
	}

	rows = append(rows, plRows(d.PL.Cumulative)...)

	rows = append(rows,
		[]any{"Venda por área/dia", utils.RoundTo(d.Efficiency.HK, 2), utils.RoundTo(d.Efficiency.MC, 2), utils.RoundTo(d.Efficiency.Total, 2)},
		[]any{"Dias decorridos", d.ElapsedDays, "", ""},
	)

	return rows
}

func plRows(h deriving.HorizonSummary) [][]any {
	type metric struct {
		label string
		value func(deriving.Snapshot) any
	}

	metrics := []metric{
		{"Lucro bruto (acum.)", func(s deriving.Snapshot) any { return s.GrossProfit }},
		{"Margem bruta (acum.)", func(s deriving.Snapshot) any { return percent(s.GrossProfitRate) }},
		{"Lucro direto (acum.)", func(s deriving.Snapshot) any { return s.DirectProfit }},
		{"Margem direta (acum.)", func(s deriving.Snapshot) any { return percent(s.DirectProfitRate) }},
		{"Lucro operacional (acum.)", func(s deriving.Snapshot) any { return s.OperatingProfit }},
		{"Margem operacional (acum.)", func(s deriving.Snapshot) any { return percent(s.OperatingProfitRate) }},
	}

	rows := make([][]any, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []any{m.label, m.value(h.HK.Current), m.value(h.MC.Current), m.value(h.Total.Current)})
	}
	return rows
}

func storeRows(stores []classifying.StoreRow) [][]any {
	rows := [][]any{{
		"Código", "Loja", "País", "Canal", "Venda líquida", "Venda ano anterior", "YOY",
		"Lucro direto", "Aluguel %", "Pessoal %", "Categoria", "Categoria anterior",
	}}

	for _, s := range stores {
		rows = append(rows, []any{
			s.Code, s.Name, s.Country, s.Channel, s.NetSales, s.NetSalesPrev, s.YoyLabel,
			s.DirectProfit, percent(s.RentRatio), percent(s.LaborRatio), string(s.Category), string(s.PrevCategory),
		})
	}
	return rows
}

func stagnantRows(report classifying.InventoryReport) [][]any {
	rows := [][]any{{
		"Subcategoria", "Nome", "Temporada", "Estoque (etiqueta)", "Venda bruta", "Venda líquida", "Desconto", "Dias de estoque",
	}}

	for _, line := range report.Stagnant {
		rows = append(rows, []any{
			line.Subcategory, line.SubcategoryName, line.Season, line.StockPrice, line.GrossSales, line.NetSales,
			percent(line.DiscountRate), line.StockDaysLabel,
		})
	}
	return rows
}
