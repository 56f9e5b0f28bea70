package services

import (
	"fmt"

	"licenca_flow_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// reportSheet is the sheet name of the submitted-processes export
const reportSheet = "Processos"

// BuildSubmittedProcessesReport builds an XLSX workbook listing every
// submitted process, for the agency's intake desk
func BuildSubmittedProcessesReport(gdb *gorm.DB) (*excelize.File, error) {
	var processes []models.Process
	err := gdb.Preload("Organization").Preload("Atividade").
		Where("status = ?", models.ProcessStatusSubmitted).
		Order("submitted_at ASC").
		Find(&processes).Error
	if err != nil {
		return nil, Normalize(err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"Processo", "Status", "Empresa", "CNPJ", "Atividade", "Submetido em"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(reportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, proc := range processes {
		organization := ""
		cnpj := ""
		if proc.Organization != nil {
			organization = proc.Organization.NomeRazao
			cnpj = proc.Organization.CpfCnpj
		}
		atividade := ""
		if proc.Atividade != nil {
			atividade = fmt.Sprintf("%s %s", proc.Atividade.Codigo, proc.Atividade.Nome)
		}
		submittedAt := ""
		if proc.SubmittedAt != nil {
			submittedAt = proc.SubmittedAt.Format("02/01/2006 15:04")
		}

		values := []interface{}{proc.ID, proc.Status, organization, cnpj, atividade, submittedAt}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	return f, nil
}
