package seed

import (
	"gorm.io/gorm"

	"github.com/berberbook/saloniumpro/internal/models"
)

// Fixed sample rows, loaded when the catalog tables are empty.

func Services() []models.Service {
	return []models.Service{
		{Name: "Saç Kesimi", Duration: 30, Price: 100, Description: "Standart saç kesimi"},
		{Name: "Sakal Tıraşı", Duration: 20, Price: 50, Description: "Sakal şekillendirme"},
		{Name: "Saç Boyama", Duration: 90, Price: 300, Description: "Saç boyama işlemi"},
		{Name: "Fön", Duration: 30, Price: 80, Description: "Saç kurutma ve şekillendirme"},
	}
}

func Products() []models.Product {
	return []models.Product{
		{Name: "Şampuan", Category: "Saç Bakım", Price: 150, Stock: 10, Description: "Profesyonel saç şampuanı"},
		{Name: "Saç Kremi", Category: "Saç Bakım", Price: 120, Stock: 8, Description: "Nemlendirici saç kremi"},
		{Name: "Sakal Yağı", Category: "Sakal Bakım", Price: 90, Stock: 15, Description: "Doğal sakal bakım yağı"},
		{Name: "Saç Köpüğü", Category: "Şekillendirici", Price: 80, Stock: 12, Description: "Hacim veren saç köpüğü"},
	}
}

// IfEmpty inserts the sample catalog when the corresponding table holds no
// rows. It reports whether anything was written.
func IfEmpty(db *gorm.DB) (bool, error) {
	seeded := false

	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return seeded, err
	}
	if count == 0 {
		services := Services()
		if err := db.Create(&services).Error; err != nil {
			return seeded, err
		}
		seeded = true
	}

	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return seeded, err
	}
	if count == 0 {
		products := Products()
		if err := db.Create(&products).Error; err != nil {
			return seeded, err
		}
		seeded = true
	}

	return seeded, nil
}

// Reset wipes every application table (children before parents) and reloads
// the sample catalog.
func Reset(db *gorm.DB) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.SaleItem{},
			&models.Sale{},
			&models.Appointment{},
			&models.Product{},
			&models.Service{},
			&models.Customer{},
		} {
			if err := tx.Where("id <> 0").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, err = IfEmpty(db)
	return err
}
