package forecast

import (
	"errors"
	"math"
)

// ErrNotTrained — Predict вызван до Train
var ErrNotTrained = errors.New("model is not trained")

// ErrDimensionMismatch — число признаков не совпадает с обученной моделью
var ErrDimensionMismatch = errors.New("feature dimension mismatch")

const pivotEps = 1e-10

// DemandForecastModel — линейная регрессия, обучаемая методом наименьших
// квадратов. Живет в памяти одного запроса, никуда не сохраняется
type DemandForecastModel struct {
	weights []float64 // weights[0] — свободный член
	trained bool
}

func NewDemandForecastModel() *DemandForecastModel {
	return &DemandForecastModel{}
}

// Train решает нормальные уравнения для X с добавленным свободным членом.
// Вырожденные направления (например, один наблюдаемый пример) получают
// нулевые коэффициенты вместо ошибки
func (m *DemandForecastModel) Train(x [][]float64, y []float64) error {
	if len(x) != len(y) {
		return ErrDimensionMismatch
	}

	cols := 0
	if len(x) > 0 {
		cols = len(x[0])
	}
	n := cols + 1 // + свободный член

	// A = Z^T Z, b = Z^T y, где Z — X с колонкой единиц слева
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	b := make([]float64, n)

	for i, row := range x {
		if len(row) != cols {
			return ErrDimensionMismatch
		}
		z := make([]float64, n)
		z[0] = 1
		copy(z[1:], row)
		for p := 0; p < n; p++ {
			for q := 0; q < n; q++ {
				a[p][q] += z[p] * z[q]
			}
			b[p] += z[p] * y[i]
		}
	}

	m.weights = solveNormalEquations(a, b)
	m.trained = true
	return nil
}

// Predict возвращает прогноз для каждой строки.
// До обучения модель отказывается предсказывать
func (m *DemandForecastModel) Predict(x [][]float64) ([]float64, error) {
	if !m.trained {
		return nil, ErrNotTrained
	}

	predictions := make([]float64, len(x))
	for i, row := range x {
		if len(row) != len(m.weights)-1 {
			return nil, ErrDimensionMismatch
		}
		v := m.weights[0]
		for j, f := range row {
			v += m.weights[j+1] * f
		}
		predictions[i] = v
	}
	return predictions, nil
}

// Mean усредняет прогнозы в одно число; пустая последовательность дает 0
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// solveNormalEquations решает A*w = b методом Гаусса-Жордана с частичным
// выбором ведущего элемента. Колонки без ведущего элемента (ранговый
// дефицит) дают нулевой вес
func solveNormalEquations(a [][]float64, b []float64) []float64 {
	n := len(b)
	pivotRow := make([]int, n) // строка ведущего элемента для колонки, -1 если нет
	for i := range pivotRow {
		pivotRow[i] = -1
	}

	row := 0
	for col := 0; col < n && row < n; col++ {
		// частичный выбор ведущего элемента
		sel := row
		for r := row; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[sel][col]) {
				sel = r
			}
		}
		if math.Abs(a[sel][col]) < pivotEps {
			continue
		}
		a[sel], a[row] = a[row], a[sel]
		b[sel], b[row] = b[row], b[sel]
		pivotRow[col] = row

		for r := 0; r < n; r++ {
			if r == row {
				continue
			}
			factor := a[r][col] / a[row][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[row][c]
			}
			b[r] -= factor * b[row]
		}
		row++
	}

	w := make([]float64, n)
	for col := 0; col < n; col++ {
		if r := pivotRow[col]; r >= 0 {
			w[col] = b[r] / a[r][col]
		}
	}
	return w
}
