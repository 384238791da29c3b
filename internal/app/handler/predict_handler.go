package handler

import (
	"errors"
	"io"
	"net/http"

	"backend/internal/app/dto"
	"backend/internal/app/forecast"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PredictInventory обучает регрессию на загруженном CSV и возвращает
// одно усредненное значение спроса
// @Summary Прогноз спроса
// @Description Принимает CSV с историей продаж, обучает модель и возвращает усредненный прогноз
// @Tags Inventory
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV файл с колонками Historical_Sales, Promotion, Day_of_Week, Month, Product_ID, Demand"
// @Success 200 {object} dto.PredictResponse
// @Failure 400 {object} dto.ErrorDetail
// @Router /inventory/predict [post]
func (h *Handler) PredictInventory(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		h.predictError(ctx, err, "file_missing")
		return
	}

	opened, err := file.Open()
	if err != nil {
		h.predictError(ctx, err, "file_unreadable")
		return
	}
	defer opened.Close()

	contents, err := io.ReadAll(opened)
	if err != nil {
		h.predictError(ctx, err, "file_unreadable")
		return
	}

	dataset, err := forecast.ParseCSV(contents)
	if err != nil {
		h.predictError(ctx, err, parseErrorCode(err))
		return
	}

	// Вся подготовка и модель живут только в рамках этого запроса
	features, target, _ := forecast.Preprocess(dataset)

	model := forecast.NewDemandForecastModel()
	if err := model.Train(features.X, target); err != nil {
		h.predictError(ctx, err, "model_error")
		return
	}

	predictions, err := model.Predict(features.X)
	if err != nil {
		h.predictError(ctx, err, "model_error")
		return
	}

	// Пустой файл дает прогноз 0, а не ошибку
	avgPrediction := forecast.Mean(predictions)
	logrus.Infof("Generated prediction: %f", avgPrediction)

	ctx.JSON(http.StatusOK, dto.PredictResponse{
		Predictions: []float64{avgPrediction},
	})
}

// predictError пишет полный текст ошибки в лог оператора,
// клиенту уходит общее сообщение и машинный код
func (h *Handler) predictError(ctx *gin.Context, err error, code string) {
	logrus.WithError(err).Error("Error processing uploaded file")
	ctx.JSON(http.StatusBadRequest, dto.ErrorDetail{
		Detail: "Invalid CSV format",
		Code:   code,
	})
}

func parseErrorCode(err error) string {
	switch {
	case errors.Is(err, forecast.ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, forecast.ErrBadValue):
		return "bad_value"
	default:
		return "invalid_csv"
	}
}
