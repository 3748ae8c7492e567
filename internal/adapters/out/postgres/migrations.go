package postgres

import (
	"gorm.io/gorm"

	"picking/internal/adapters/out/postgres/lockrepo"
	"picking/internal/adapters/out/postgres/shipmentrepo"
	"picking/internal/adapters/out/postgres/statsrepo"
	"picking/internal/adapters/out/postgres/taskrepo"
)

// Migrate brings the schema up to date for every aggregate table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.LineDTO{},
		&taskrepo.TaskDTO{},
		&taskrepo.TaskLineDTO{},
		&lockrepo.LockDTO{},
		&statsrepo.PerformanceRecordDTO{},
		&statsrepo.PeriodRankDTO{},
	)
}
