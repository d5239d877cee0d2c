package mysql

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/raamveerrr/pos/internal/config"
	"github.com/raamveerrr/pos/internal/domain"
)

func NewMySQL(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&domain.Restaurant{},
		&domain.UserProfile{},
		&domain.Table{},
		&domain.MenuItem{},
		&domain.InventoryItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.OrderCounter{},
		&domain.Payment{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
