package ds

// Таблица дилеров (поставщиков)
type Dealer struct {
	DealerID     uint    `gorm:"primaryKey;column:dealer_id"`
	Name         string  `gorm:"type:varchar(100);not null"`
	Email        string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	CompanyName  string  `gorm:"type:varchar(100);not null"`
	LocationName string  `gorm:"type:varchar(100)"`
	Latitude     float64 `gorm:"type:decimal(9,6)"`
	Longitude    float64 `gorm:"type:decimal(9,6)"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	LogoURL      *string `gorm:"type:varchar(255)"` // Nullable
}
