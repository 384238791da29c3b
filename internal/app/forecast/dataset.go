package forecast

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingColumn — в загруженном CSV нет обязательной колонки
	ErrMissingColumn = errors.New("missing required column")
	// ErrBadValue — значение в ячейке не удалось разобрать как число
	ErrBadValue = errors.New("bad numeric value")
)

// Обязательные колонки загружаемого датасета
var requiredColumns = []string{
	"Historical_Sales",
	"Promotion",
	"Day_of_Week",
	"Month",
	"Product_ID",
	"Demand",
}

// Row — одна строка датасета после разбора
type Row struct {
	HistoricalSales float64
	Promotion       float64
	DayOfWeek       float64
	Month           float64
	ProductID       string
	Demand          float64
}

// Dataset — эфемерная таблица, живет только в рамках одного запроса
type Dataset struct {
	Rows []Row
}

// ParseCSV разбирает байты загруженного файла в Dataset.
// Первая строка обязана быть заголовком
func ParseCSV(data []byte) (*Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}

	// Индексы колонок по заголовку
	header := records[0]
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := colIndex[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	parseFloat := func(record []string, column string, line int) (float64, error) {
		raw := strings.TrimSpace(record[colIndex[column]])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: column %s, line %d: %q", ErrBadValue, column, line, raw)
		}
		return v, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2 // строка файла с учетом заголовка
		var row Row
		var err error
		if row.HistoricalSales, err = parseFloat(record, "Historical_Sales", line); err != nil {
			return nil, err
		}
		if row.Promotion, err = parseFloat(record, "Promotion", line); err != nil {
			return nil, err
		}
		if row.DayOfWeek, err = parseFloat(record, "Day_of_Week", line); err != nil {
			return nil, err
		}
		if row.Month, err = parseFloat(record, "Month", line); err != nil {
			return nil, err
		}
		if row.Demand, err = parseFloat(record, "Demand", line); err != nil {
			return nil, err
		}
		row.ProductID = strings.TrimSpace(record[colIndex["Product_ID"]])
		rows = append(rows, row)
	}

	return &Dataset{Rows: rows}, nil
}
