package forecast

import (
	"math"
	"sort"
)

// Scaler хранит параметры стандартизации, подобранные на этом же датасете.
// Между запросами не переиспользуется
type Scaler struct {
	Mean  []float64
	Scale []float64
}

// Features — числовая матрица признаков после кодирования и масштабирования
type Features struct {
	Columns []string
	X       [][]float64
}

// Preprocess повторяет подготовку данных перед обучением:
// one-hot кодирование Product_ID с отбрасыванием первой категории,
// затем стандартизация каждой колонки (нулевое среднее, единичная дисперсия).
// Опорная категория — первая в лексикографическом порядке среди значений
// именно этой загрузки, поэтому набор колонок меняется от файла к файлу
func Preprocess(d *Dataset) (*Features, []float64, *Scaler) {
	// Отсортированный список категорий Product_ID без первой
	seen := make(map[string]bool)
	for _, row := range d.Rows {
		seen[row.ProductID] = true
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	if len(categories) > 0 {
		categories = categories[1:] // drop-first
	}

	columns := []string{"Historical_Sales", "Promotion", "Day_of_Week", "Month"}
	for _, c := range categories {
		columns = append(columns, "Product_ID_"+c)
	}

	x := make([][]float64, len(d.Rows))
	y := make([]float64, len(d.Rows))
	for i, row := range d.Rows {
		features := make([]float64, len(columns))
		features[0] = row.HistoricalSales
		features[1] = row.Promotion
		features[2] = row.DayOfWeek
		features[3] = row.Month
		for j, c := range categories {
			if row.ProductID == c {
				features[4+j] = 1
			}
		}
		x[i] = features
		y[i] = row.Demand
	}

	scaler := fitScaler(x, len(columns))
	scaler.Transform(x)

	return &Features{Columns: columns, X: x}, y, scaler
}

// fitScaler считает среднее и стандартное отклонение по каждой колонке.
// Нулевое отклонение заменяется единицей, чтобы константная колонка
// превращалась в нули, а не в NaN
func fitScaler(x [][]float64, cols int) *Scaler {
	mean := make([]float64, cols)
	scale := make([]float64, cols)

	n := float64(len(x))
	if n == 0 {
		for j := range scale {
			scale[j] = 1
		}
		return &Scaler{Mean: mean, Scale: scale}
	}

	for _, row := range x {
		for j, v := range row {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= n
	}

	for _, row := range x {
		for j, v := range row {
			diff := v - mean[j]
			scale[j] += diff * diff
		}
	}
	for j := range scale {
		scale[j] = math.Sqrt(scale[j] / n)
		if scale[j] == 0 {
			scale[j] = 1
		}
	}

	return &Scaler{Mean: mean, Scale: scale}
}

// Transform стандартизирует матрицу на месте
func (s *Scaler) Transform(x [][]float64) {
	for _, row := range x {
		for j := range row {
			row[j] = (row[j] - s.Mean[j]) / s.Scale[j]
		}
	}
}
