package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UploadDealerLogo загружает логотип компании дилера
// @Summary Загрузка логотипа дилера
// @Description Загружает логотип компании дилера в MinIO
// @Tags Dealers
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID дилера"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.LogoUploadResponse
// @Failure 400 {object} dto.ErrorDetail
// @Failure 404 {object} dto.ErrorDetail
// @Router /dealer/{id}/logo [post]
func (h *Handler) UploadDealerLogo(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("invalid dealer id"))
		return
	}

	dealer, err := h.Repository.GetDealerByID(uint(id))
	if err != nil || dealer == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("dealer not found"))
		return
	}

	logoURL, ok := h.saveLogo(ctx, dealer.LogoURL)
	if !ok {
		return
	}

	if err := h.Repository.UpdateDealerLogo(uint(id), logoURL); err != nil {
		logrus.Error("Error updating dealer logo: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("logo update failed"))
		return
	}

	ctx.JSON(http.StatusOK, dto.LogoUploadResponse{
		Message: "Logo uploaded successfully",
		LogoURL: logoURL,
	})
}

// UploadShopkeeperLogo загружает логотип магазина
// @Summary Загрузка логотипа магазина
// @Description Загружает логотип магазина в MinIO
// @Tags Shopkeepers
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID владельца магазина"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.LogoUploadResponse
// @Failure 400 {object} dto.ErrorDetail
// @Failure 404 {object} dto.ErrorDetail
// @Router /shopkeeper/{id}/logo [post]
func (h *Handler) UploadShopkeeperLogo(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("invalid shopkeeper id"))
		return
	}

	shopkeeper, err := h.Repository.GetShopkeeperByID(uint(id))
	if err != nil || shopkeeper == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("shopkeeper not found"))
		return
	}

	logoURL, ok := h.saveLogo(ctx, shopkeeper.LogoURL)
	if !ok {
		return
	}

	if err := h.Repository.UpdateShopkeeperLogo(uint(id), logoURL); err != nil {
		logrus.Error("Error updating shopkeeper logo: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("logo update failed"))
		return
	}

	ctx.JSON(http.StatusOK, dto.LogoUploadResponse{
		Message: "Logo uploaded successfully",
		LogoURL: logoURL,
	})
}

// GetDealerLogo возвращает ссылку на логотип дилера
// @Summary Получение логотипа дилера
// @Description Возвращает временную ссылку на логотип компании дилера
// @Tags Dealers
// @Produce json
// @Param id path int true "ID дилера"
// @Success 200 {object} dto.LogoUploadResponse
// @Failure 404 {object} dto.ErrorDetail
// @Router /dealer/{id}/logo [get]
func (h *Handler) GetDealerLogo(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("invalid dealer id"))
		return
	}

	dealer, err := h.Repository.GetDealerByID(uint(id))
	if err != nil || dealer == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("dealer not found"))
		return
	}

	h.respondLogoURL(ctx, dealer.LogoURL)
}

// GetShopkeeperLogo возвращает ссылку на логотип магазина
// @Summary Получение логотипа магазина
// @Description Возвращает временную ссылку на логотип магазина
// @Tags Shopkeepers
// @Produce json
// @Param id path int true "ID владельца магазина"
// @Success 200 {object} dto.LogoUploadResponse
// @Failure 404 {object} dto.ErrorDetail
// @Router /shopkeeper/{id}/logo [get]
func (h *Handler) GetShopkeeperLogo(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("invalid shopkeeper id"))
		return
	}

	shopkeeper, err := h.Repository.GetShopkeeperByID(uint(id))
	if err != nil || shopkeeper == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("shopkeeper not found"))
		return
	}

	h.respondLogoURL(ctx, shopkeeper.LogoURL)
}

func (h *Handler) respondLogoURL(ctx *gin.Context, logo *string) {
	if logo == nil || *logo == "" {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("logo is not set"))
		return
	}

	// С MinIO отдаем временную подписанную ссылку, иначе сам ключ
	logoURL := *logo
	if h.MinIOClient != nil {
		if url, err := h.MinIOClient.GetLogoURL(*logo); err == nil {
			logoURL = url
		} else {
			logrus.Warnf("Failed to presign logo %s: %v", *logo, err)
		}
	}

	ctx.JSON(http.StatusOK, dto.LogoUploadResponse{
		Message: "Logo found",
		LogoURL: logoURL,
	})
}

// saveLogo читает файл из запроса и кладет его в MinIO.
// Возвращает ключ объекта; при ошибке сам пишет ответ клиенту
func (h *Handler) saveLogo(ctx *gin.Context, oldLogo *string) (string, bool) {
	file, err := ctx.FormFile("image")
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("image file is missing"))
		return "", false
	}

	opened, err := file.Open()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("failed to read image"))
		return "", false
	}
	defer opened.Close()

	fileData, err := io.ReadAll(opened)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("failed to read image"))
		return "", false
	}

	// Удаляем старый логотип из MinIO (если есть)
	if oldLogo != nil && *oldLogo != "" && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteLogo(*oldLogo); err != nil {
			logrus.Warnf("Failed to delete old logo %s: %v", *oldLogo, err)
		}
	}

	var logoURL string
	if h.MinIOClient != nil {
		logoURL, err = h.MinIOClient.UploadLogo(fileData, file.Filename)
		if err != nil {
			logrus.Error("Error uploading to MinIO: ", err)
			h.errorHandler(ctx, http.StatusInternalServerError, errors.New("logo upload failed"))
			return "", false
		}
	} else {
		// Fallback если MinIO не настроен
		logoURL = "uploaded_" + file.Filename
	}

	return logoURL, true
}
