package services

import (
	"bytes"
	"time"

	"github.com/roshanx0/restaurant-ordering-saas/repository"
	"github.com/roshanx0/restaurant-ordering-saas/utils"
	"github.com/tealeg/xlsx"
)

type ReportService struct {
	Repo *repository.OrderRepository
}

func NewReportService(repo *repository.OrderRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// OrdersXLSX exports a restaurant's orders within [from, to) as a
// spreadsheet for offline bookkeeping.
func (s *ReportService) OrdersXLSX(restID uint, from, to time.Time) ([]byte, error) {
	orders, err := s.Repo.ListForReport(restID, from, to)
	if err != nil {
		return nil, err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}

	headers := []string{
		"Order Number", "Placed At", "Type", "Table", "Customer", "Phone",
		"Items", "Subtotal", "Tax", "Total", "Status",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.OrderNumber)
		row.AddCell().SetValue(o.CreatedAt.Format(time.RFC3339))
		row.AddCell().SetValue(o.OrderType)
		row.AddCell().SetValue(o.TableNumber)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.CustomerPhone)

		itemCount := 0
		for _, it := range o.Items {
			itemCount += it.Quantity
		}
		row.AddCell().SetValue(itemCount)
		row.AddCell().SetValue(utils.FormatCurrency(o.Subtotal))
		row.AddCell().SetValue(utils.FormatCurrency(o.Tax))
		row.AddCell().SetValue(utils.FormatCurrency(o.Total))
		row.AddCell().SetValue(o.Status)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
