package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Названия листов выгрузки
const (
	SheetSummary      = "요약"
	SheetServices     = "서비스"
	SheetAppointments = "예약"
)

var statusLabels = map[domain.AppointmentStatus]string{
	domain.StatusConfirmed: "확정",
	domain.StatusCompleted: "완료",
	domain.StatusCancelled: "취소",
}

// ExportMonthly пишет статистику месяца и все записи месяца в xlsx
func (s *Service) ExportMonthly(ctx context.Context, year, month int, w io.Writer) error {
	stats, appointments, err := s.compute(ctx, year, month)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummary(f, stats); err != nil {
		return fmt.Errorf("%w: summary sheet: %v", ErrExport, err)
	}
	if err := writeServices(f, stats); err != nil {
		return fmt.Errorf("%w: services sheet: %v", ErrExport, err)
	}
	if err := writeAppointments(f, appointments); err != nil {
		return fmt.Errorf("%w: appointments sheet: %v", ErrExport, err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: write: %v", ErrExport, err)
	}

	s.logger.Info("ExportMonthly: exported %d-%02d, %d appointments", year, month, len(appointments))
	return nil
}

// FileName имя файла выгрузки
func FileName(year, month int) string {
	return fmt.Sprintf("salon-stats-%04d-%02d.xlsx", year, month)
}

func writeSummary(f *excelize.File, stats *domain.MonthlyStats) error {
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"항목", "값"},
		{"기간", fmt.Sprintf("%d년 %d월", stats.Year, stats.Month)},
		{"오늘 예약", stats.TodayCount},
		{"이번 달 고객", stats.MonthlyCustomers},
		{"전체 예약", stats.TotalAppointments},
		{"완료율(%)", stats.CompletionRate},
		{"취소율(%)", stats.CancellationRate},
	}
	return writeRows(f, SheetSummary, rows)
}

func writeServices(f *excelize.File, stats *domain.MonthlyStats) error {
	if _, err := f.NewSheet(SheetServices); err != nil {
		return err
	}
	rows := [][]interface{}{{"순위", "서비스", "건수", "비율(%)"}}
	for i, share := range stats.ServiceRanking {
		rows = append(rows, []interface{}{i + 1, share.Name, share.Count, share.Percentage})
	}
	return writeRows(f, SheetServices, rows)
}

func writeAppointments(f *excelize.File, appointments []*domain.Appointment) error {
	if _, err := f.NewSheet(SheetAppointments); err != nil {
		return err
	}
	rows := [][]interface{}{{"날짜", "시간", "고객", "서비스", "소요시간", "상태", "메모"}}
	for _, a := range appointments {
		customer, memo := "", ""
		if a.CustomerName != nil {
			customer = *a.CustomerName
		}
		if a.Memo != nil {
			memo = *a.Memo
		}
		rows = append(rows, []interface{}{
			a.Date.String(), a.Time.String(), customer, a.Service, a.Duration, statusLabels[a.Status], memo,
		})
	}
	return writeRows(f, SheetAppointments, rows)
}

// writeRows пишет строки с первой; первая строка считается заголовком
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if len(rows) == 0 {
		return nil
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", end, style)
}
