package repository

import (
	"backend/internal/app/ds"
)

// Методы для дилеров (ORM)

func (r *Repository) GetDealerByEmail(email string) (*ds.Dealer, error) {
	var dealer ds.Dealer
	err := r.db.Where("email = ?", email).First(&dealer).Error
	if err != nil {
		return nil, err
	}
	return &dealer, nil
}

func (r *Repository) GetDealerByID(id uint) (*ds.Dealer, error) {
	var dealer ds.Dealer
	err := r.db.First(&dealer, id).Error
	if err != nil {
		return nil, err
	}
	return &dealer, nil
}

// DealerExistsByEmail — проверка перед вставкой, не транзакционное ограничение
func (r *Repository) DealerExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Dealer{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateDealer(dealer *ds.Dealer) error {
	return r.db.Create(dealer).Error
}

func (r *Repository) UpdateDealerLogo(id uint, logoURL string) error {
	return r.db.Model(&ds.Dealer{}).Where("dealer_id = ?", id).
		Update("logo_url", logoURL).Error
}

func (r *Repository) GetAllDealers() ([]ds.Dealer, error) {
	var dealers []ds.Dealer
	err := r.db.Find(&dealers).Error
	if err != nil {
		return nil, err
	}
	return dealers, nil
}
