package dto

// ============ Общие структуры ============

// ErrorDetail — тело любого ответа с ошибкой
type ErrorDetail struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"` // машинный код для предсказаний
}

// ============ Аутентификация ============

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type DealerLoginResponse struct {
	Message  string `json:"message"`
	DealerID uint   `json:"dealer_id"`
}

type ShopkeeperLoginResponse struct {
	Message      string `json:"message"`
	ShopkeeperID uint   `json:"shopkeeper_id"`
}

// ============ Регистрация ============

type DealerSignupRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	CompanyName  string  `json:"company_name" binding:"required"`
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Password     string  `json:"password" binding:"required"`
}

type ShopkeeperSignupRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	ShopName     string  `json:"shop_name" binding:"required"`
	LocationName string  `json:"location_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Domain       string  `json:"domain"`
	Password     string  `json:"password" binding:"required"`
}

// ============ Прогноз спроса ============

// PredictResponse всегда содержит ровно одно усредненное значение
type PredictResponse struct {
	Predictions []float64 `json:"predictions"`
}

// ============ Логотипы ============

type LogoUploadResponse struct {
	Message string `json:"message"`
	LogoURL string `json:"logo_url"`
}
