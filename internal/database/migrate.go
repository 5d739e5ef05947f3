package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/foodfight/backend/internal/model"
)

// DefaultBatchSize is used when ImportRecipes gets a batch size below one
const DefaultBatchSize = 500

// ImportRecipes replaces the recipes table with raws, keeping their order
func ImportRecipes(db *gorm.DB, raws []model.RawRecipe, batchSize int) error {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	if err := db.AutoMigrate(&model.RawRecipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes table: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.RawRecipe{}).Error; err != nil {
			return fmt.Errorf("failed to clear recipes table: %w", err)
		}
		if len(raws) == 0 {
			return nil
		}

		rows := make([]model.RawRecipe, len(raws))
		for i, r := range raws {
			r.RowID = uint(i + 1)
			rows[i] = r
		}
		if err := tx.CreateInBatches(rows, batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert recipes: %w", err)
		}
		return nil
	})
}
