package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/campus-conduct/drl-server/internal/sheet"
)

// PeriodReport renders one grading period's sheets as an XLSX workbook:
// a row per student with the four tier totals, the final score and the
// workflow status. Totals are written as persisted; the caller is
// expected to gate access to this endpoint by role.
func PeriodReport(ctx context.Context, store sheet.Store, periodID string) (*excelize.File, error) {
	sheets, err := store.List(ctx, sheet.ListOpts{PeriodID: periodID})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const ws = "Sheet1"
	header := []any{"MSSV", "Tự chấm", "Lớp", "BCH", "Khoa", "Tổng kết", "Trạng thái"}
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(ws, cell, h); err != nil {
			return nil, err
		}
	}
	for row, sh := range sheets {
		values := []any{
			sh.StudentID, sh.SelfScore, sh.ClassScore, sh.BchScore,
			sh.FacultyScore, sh.FinalScore, string(sh.Status),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(ws, cell, v); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetSheetName(ws, reportSheetName(periodID)); err != nil {
		return nil, err
	}
	return f, nil
}

func reportSheetName(periodID string) string {
	// sheet names are capped at 31 chars by the format
	name := fmt.Sprintf("DRL %s", periodID)
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
