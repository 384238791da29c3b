package ds

// Таблица владельцев магазинов
type Shopkeeper struct {
	ShopkeeperID uint    `gorm:"primaryKey;column:shopkeeper_id"`
	Name         string  `gorm:"type:varchar(100);not null"`
	Email        string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	ShopName     string  `gorm:"type:varchar(100);not null"`
	LocationName string  `gorm:"type:varchar(100)"`
	Latitude     float64 `gorm:"type:decimal(9,6)"`
	Longitude    float64 `gorm:"type:decimal(9,6)"`
	Domain       string  `gorm:"type:varchar(50)"` // Сфера магазина (grocery, electronics, ...)
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	LogoURL      *string `gorm:"type:varchar(255)"` // Nullable
}
