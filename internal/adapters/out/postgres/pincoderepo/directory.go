// Package pincoderepo implements the pincode directory lookup against the
// postgres pincodes table. The table is reference data loaded out of band;
// this adapter only ever reads it.
package pincoderepo

import (
	"context"
	"errors"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/errs"

	"gorm.io/gorm"
)

// PincodeDTO represents one row of the pincode reference table.
type PincodeDTO struct {
	Pincode string `gorm:"type:varchar(6);primaryKey"`
	City    string `gorm:"type:varchar(255);not null"`
	State   string `gorm:"type:varchar(255);not null"`
	IsMetro bool   `gorm:"type:boolean;not null"`
}

// TableName specifies the database table name for pincode records.
func (PincodeDTO) TableName() string {
	return "pincodes"
}

// GormPincodeDirectory resolves pincodes to city/state/metro records.
// Implements services.PincodeDirectory.
type GormPincodeDirectory struct {
	db *gorm.DB
}

// NewGormPincodeDirectory creates a directory backed by the pincodes table.
func NewGormPincodeDirectory(db *gorm.DB) *GormPincodeDirectory {
	return &GormPincodeDirectory{db: db}
}

// Lookup returns the directory record for a pincode.
// An unknown pincode fails with an object-not-found error, which aborts the
// whole quote computation at the caller.
func (d *GormPincodeDirectory) Lookup(ctx context.Context, pincode kernel.Pincode) (kernel.PincodeInfo, error) {
	if err := pincode.Validate(); err != nil {
		return kernel.PincodeInfo{}, err
	}

	var dto PincodeDTO
	if err := d.db.WithContext(ctx).First(&dto, "pincode = ?", pincode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.PincodeInfo{}, errs.NewObjectNotFoundError("pincode", pincode.String())
		}
		return kernel.PincodeInfo{}, err
	}

	return kernel.NewPincodeInfo(dto.City, dto.State, dto.IsMetro)
}
