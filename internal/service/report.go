package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"restaurant-api/internal/domain"
)

// ordersReportHeader is the column layout of the admin orders export.
var ordersReportHeader = []string{
	"Order Number",
	"Restaurant",
	"Customer",
	"Status",
	"Items",
	"Total Amount",
	"Placed At",
}

// GenerateOrdersReport renders recent orders into an xlsx workbook, one row
// per order.
func GenerateOrdersReport(orders []domain.OrderSummary) ([]byte, error) {
	f := excelize.NewFile()
	// WriteToBuffer needs the file open, so no deferred Close on the happy path.

	sheetName := "Orders"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for col, title := range ordersReportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, order := range orders {
		values := []any{
			order.OrderNumber,
			order.RestaurantName,
			order.CustomerName,
			order.Status,
			order.TotalItems,
			order.TotalAmount,
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
