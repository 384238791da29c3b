package handler

import (
	"errors"
	"net/http"

	"backend/internal/app/auth"
	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Фиксированные сообщения: клиент не должен отличать
// "нет такого email" от "неверный пароль"
var (
	errInvalidCredentials = errors.New("Invalid credentials")
	errEmailTaken         = errors.New("Email already registered")
)

// DealerLogin аутентификация дилера
// @Summary Вход дилера
// @Description Проверка email и пароля, возвращает идентификатор дилера
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.DealerLoginResponse
// @Failure 401 {object} dto.ErrorDetail
// @Router /dealer/login [post]
func (h *Handler) DealerLogin(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	dealer, err := h.Repository.GetDealerByEmail(request.Email)
	if err != nil || !auth.CheckPassword(request.Password, dealer.PasswordHash) {
		h.errorHandler(ctx, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	ctx.JSON(http.StatusOK, dto.DealerLoginResponse{
		Message:  "Login successful",
		DealerID: dealer.DealerID,
	})
}

// ShopkeeperLogin аутентификация владельца магазина
// @Summary Вход владельца магазина
// @Description Проверка email и пароля, возвращает идентификатор владельца
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.ShopkeeperLoginResponse
// @Failure 401 {object} dto.ErrorDetail
// @Router /shopkeeper/login [post]
func (h *Handler) ShopkeeperLogin(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	shopkeeper, err := h.Repository.GetShopkeeperByEmail(request.Email)
	if err != nil || !auth.CheckPassword(request.Password, shopkeeper.PasswordHash) {
		h.errorHandler(ctx, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	ctx.JSON(http.StatusOK, dto.ShopkeeperLoginResponse{
		Message:      "Login successful",
		ShopkeeperID: shopkeeper.ShopkeeperID,
	})
}

// DealerSignup регистрация нового дилера
// @Summary Регистрация дилера
// @Description Создание новой учетной записи дилера
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.DealerSignupRequest true "Данные для регистрации"
// @Success 200 {object} dto.DealerLoginResponse
// @Failure 400 {object} dto.ErrorDetail
// @Router /dealer/signup [post]
func (h *Handler) DealerSignup(ctx *gin.Context) {
	var request dto.DealerSignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	// Проверяем уникальность email до вставки
	exists, err := h.Repository.DealerExistsByEmail(request.Email)
	if err != nil {
		logrus.Error("Error checking dealer email: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("signup failed"))
		return
	}
	if exists {
		h.errorHandler(ctx, http.StatusBadRequest, errEmailTaken)
		return
	}

	passwordHash, err := auth.HashPassword(request.Password)
	if err != nil {
		logrus.Error("Error hashing password: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("signup failed"))
		return
	}

	dealer := ds.Dealer{
		Name:         request.Name,
		Email:        request.Email,
		CompanyName:  request.CompanyName,
		LocationName: request.LocationName,
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		PasswordHash: passwordHash,
	}
	if err := h.Repository.CreateDealer(&dealer); err != nil {
		logrus.Error("Error creating dealer: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("signup failed"))
		return
	}

	ctx.JSON(http.StatusOK, dto.DealerLoginResponse{
		Message:  "Dealer signup successful",
		DealerID: dealer.DealerID,
	})
}

// ShopkeeperSignup регистрация нового владельца магазина
// @Summary Регистрация владельца магазина
// @Description Создание новой учетной записи владельца магазина
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.ShopkeeperSignupRequest true "Данные для регистрации"
// @Success 200 {object} dto.ShopkeeperLoginResponse
// @Failure 400 {object} dto.ErrorDetail
// @Router /shopkeeper/signup [post]
func (h *Handler) ShopkeeperSignup(ctx *gin.Context) {
	var request dto.ShopkeeperSignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	exists, err := h.Repository.ShopkeeperExistsByEmail(request.Email)
	if err != nil {
		logrus.Error("Error checking shopkeeper email: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("signup failed"))
		return
	}
	if exists {
		h.errorHandler(ctx, http.StatusBadRequest, errEmailTaken)
		return
	}

	passwordHash, err := auth.HashPassword(request.Password)
	if err != nil {
		logrus.Error("Error hashing password: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("signup failed"))
		return
	}

	shopkeeper := ds.Shopkeeper{
		Name:         request.Name,
		Email:        request.Email,
		ShopName:     request.ShopName,
		LocationName: request.LocationName,
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		Domain:       request.Domain,
		PasswordHash: passwordHash,
	}
	if err := h.Repository.CreateShopkeeper(&shopkeeper); err != nil {
		logrus.Error("Error creating shopkeeper: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("signup failed"))
		return
	}

	ctx.JSON(http.StatusOK, dto.ShopkeeperLoginResponse{
		Message:      "Shopkeeper signup successful",
		ShopkeeperID: shopkeeper.ShopkeeperID,
	})
}
