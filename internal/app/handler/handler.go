package handler

import (
	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Store — операции хранилища учетных записей, используемые обработчиками.
// Реализуется *repository.Repository
type Store interface {
	GetDealerByEmail(email string) (*ds.Dealer, error)
	GetDealerByID(id uint) (*ds.Dealer, error)
	DealerExistsByEmail(email string) (bool, error)
	CreateDealer(dealer *ds.Dealer) error
	UpdateDealerLogo(id uint, logoURL string) error

	GetShopkeeperByEmail(email string) (*ds.Shopkeeper, error)
	GetShopkeeperByID(id uint) (*ds.Shopkeeper, error)
	ShopkeeperExistsByEmail(email string) (bool, error)
	CreateShopkeeper(shopkeeper *ds.Shopkeeper) error
	UpdateShopkeeperLogo(id uint, logoURL string) error
}

type Handler struct {
	Repository  Store
	MinIOClient *storage.MinIOClient
	Config      *config.Config
}

func NewHandler(r Store, minioClient *storage.MinIOClient, cfg *config.Config) *Handler {
	return &Handler{
		Repository:  r,
		MinIOClient: minioClient,
		Config:      cfg,
	}
}

// RegisterRoutes регистрирует маршруты API
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// Аутентификация и регистрация
	router.POST("/dealer/login", h.DealerLogin)
	router.POST("/shopkeeper/login", h.ShopkeeperLogin)
	router.POST("/dealer/signup", h.DealerSignup)
	router.POST("/shopkeeper/signup", h.ShopkeeperSignup)

	// Прогноз спроса по загруженному CSV
	router.POST("/inventory/predict", h.PredictInventory)

	// Логотипы
	router.POST("/dealer/:id/logo", h.UploadDealerLogo)
	router.GET("/dealer/:id/logo", h.GetDealerLogo)
	router.POST("/shopkeeper/:id/logo", h.UploadShopkeeperLogo)
	router.GET("/shopkeeper/:id/logo", h.GetShopkeeperLogo)

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Централизованная обработка ошибок:
// в лог уходит полный текст, клиенту — тело {detail}
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"detail": err.Error(),
	})
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
