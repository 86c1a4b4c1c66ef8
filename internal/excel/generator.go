package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/contractflow/backend/internal/service"
)

const dateLayout = "2006-01-02"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) DueDeliverables(rows []service.DueDeliverableDTO) ([]byte, error) {
	file := excelize.NewFile()
	sheet := "Due deliverables"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Deliverable", "Obligation", "Contract", "Expected date", "Quantity", "Unit", "Status"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}
	for i, row := range rows {
		r := i + 2
		set(fmt.Sprintf("A%d", r), row.DeliverableID.String())
		set(fmt.Sprintf("B%d", r), row.ObligationID.String())
		set(fmt.Sprintf("C%d", r), row.ContractID.String())
		set(fmt.Sprintf("D%d", r), row.ExpectedDate.Format(dateLayout))
		set(fmt.Sprintf("E%d", r), row.Quantity.String())
		set(fmt.Sprintf("F%d", r), row.Unit)
		set(fmt.Sprintf("G%d", r), row.Status)
	}

	_ = file.SetColWidth(sheet, "A", "C", 38)
	_ = file.SetColWidth(sheet, "D", "G", 14)
	return writeBuffer(file)
}

func (g *Generator) ContractStatus(rows []service.ContractStatusDTO) ([]byte, error) {
	file := excelize.NewFile()
	sheet := "Contract status"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Contract", "Official number", "Total obligations", "Completed obligations"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}
	for i, row := range rows {
		r := i + 2
		set(fmt.Sprintf("A%d", r), row.ContractID.String())
		set(fmt.Sprintf("B%d", r), row.OfficialNumber)
		set(fmt.Sprintf("C%d", r), row.TotalObligations)
		set(fmt.Sprintf("D%d", r), row.CompletedObligations)
	}

	_ = file.SetColWidth(sheet, "A", "A", 38)
	_ = file.SetColWidth(sheet, "B", "D", 22)
	return writeBuffer(file)
}

func (g *Generator) Deliveries(groupLabel string, rows []service.DeliveryGroupDTO) ([]byte, error) {
	file := excelize.NewFile()
	sheet := "Deliveries"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{groupLabel, "Total deliveries", "On time", "Late"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}
	for i, row := range rows {
		r := i + 2
		set(fmt.Sprintf("A%d", r), row.Name)
		set(fmt.Sprintf("B%d", r), row.TotalDeliveries)
		set(fmt.Sprintf("C%d", r), row.OnTime)
		set(fmt.Sprintf("D%d", r), row.Late)
	}

	_ = file.SetColWidth(sheet, "A", "A", 45)
	_ = file.SetColWidth(sheet, "B", "D", 16)
	return writeBuffer(file)
}

func (g *Generator) Penalties(rows []service.PenaltyReportDTO) ([]byte, error) {
	file := excelize.NewFile()
	sheet := "Penalties"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Penalty", "Contract", "Registered at", "Severity", "Reason", "Type", "Legal basis", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}
	for i, row := range rows {
		r := i + 2
		set(fmt.Sprintf("A%d", r), row.PenaltyID.String())
		set(fmt.Sprintf("B%d", r), row.ContractID.String())
		set(fmt.Sprintf("C%d", r), row.RegisteredAt.Format(dateLayout))
		set(fmt.Sprintf("D%d", r), row.Severity)
		set(fmt.Sprintf("E%d", r), row.Reason)
		set(fmt.Sprintf("F%d", r), row.Type)
		if row.LegalBasis != nil {
			set(fmt.Sprintf("G%d", r), *row.LegalBasis)
		}
		if row.Amount != nil {
			set(fmt.Sprintf("H%d", r), row.Amount.String())
		}
	}

	_ = file.SetColWidth(sheet, "A", "B", 38)
	_ = file.SetColWidth(sheet, "C", "D", 14)
	_ = file.SetColWidth(sheet, "E", "G", 35)
	_ = file.SetColWidth(sheet, "H", "H", 14)
	return writeBuffer(file)
}

func writeBuffer(file *excelize.File) ([]byte, error) {
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
