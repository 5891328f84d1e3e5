// services/sequence.go
package services

import (
	"errors"
	"fmt"
	"laundrypro-backend/models"
	"laundrypro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NextInvoiceNumber reserves the next invoice number for an outlet, formatted
// as "<prefix><zero-padded counter>" (e.g. "BD0001"). It must be called
// inside the same transaction that inserts the invoice: the counter row is
// locked for the duration of tx, so concurrent creators for one outlet are
// serialized and a failed insert rolls the counter back with it.
func NextInvoiceNumber(tx *gorm.DB, outletID uuid.UUID) (string, error) {
	var outlet models.Outlet
	if err := tx.First(&outlet, "id = ?", outletID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", utils.NotFoundError("outlet not found")
		}
		return "", err
	}

	var seq models.InvoiceSequence
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&seq, "outlet_id = ?", outletID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First invoice for this outlet. The primary key makes the insert
		// race-safe; losers fall through to the locked read.
		seq = models.InvoiceSequence{OutletID: outletID, LastNumber: 0}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seq).Error; err != nil {
			return "", err
		}
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&seq, "outlet_id = ?", outletID).Error
	}
	if err != nil {
		return "", err
	}

	seq.LastNumber++
	if err := tx.Model(&models.InvoiceSequence{}).
		Where("outlet_id = ?", outletID).
		Update("last_number", seq.LastNumber).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", outlet.Prefix, seq.LastNumber), nil
}
