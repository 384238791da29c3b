package repository

import (
	"backend/internal/app/ds"
)

// Методы для владельцев магазинов (ORM)

func (r *Repository) GetShopkeeperByEmail(email string) (*ds.Shopkeeper, error) {
	var shopkeeper ds.Shopkeeper
	err := r.db.Where("email = ?", email).First(&shopkeeper).Error
	if err != nil {
		return nil, err
	}
	return &shopkeeper, nil
}

func (r *Repository) GetShopkeeperByID(id uint) (*ds.Shopkeeper, error) {
	var shopkeeper ds.Shopkeeper
	err := r.db.First(&shopkeeper, id).Error
	if err != nil {
		return nil, err
	}
	return &shopkeeper, nil
}

// ShopkeeperExistsByEmail — проверка перед вставкой, не транзакционное ограничение
func (r *Repository) ShopkeeperExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Shopkeeper{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateShopkeeper(shopkeeper *ds.Shopkeeper) error {
	return r.db.Create(shopkeeper).Error
}

func (r *Repository) UpdateShopkeeperLogo(id uint, logoURL string) error {
	return r.db.Model(&ds.Shopkeeper{}).Where("shopkeeper_id = ?", id).
		Update("logo_url", logoURL).Error
}
