// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. This package implements the repository pattern for
// the delivery domain aggregate, handling the conversion between domain
// entities and database representations.
package deliveryrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The version column backs optimistic concurrency control,
// the status column stores the wire string so read-side queries can filter
// without joining.
type DeliveryDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber      string     `gorm:"type:varchar(14);not null;uniqueIndex"`
	SenderID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	RiderID             *uuid.UUID `gorm:"type:uuid;index"`
	PackageDescription  string     `gorm:"type:varchar(500);not null"`
	PackageWeightKg     decimal.Decimal `gorm:"type:decimal(8,3);not null"`
	PackageType         string     `gorm:"type:varchar(32);not null"`
	SpecialInstructions string     `gorm:"type:text"`
	Fragile             bool       `gorm:"not null"`
	RequiresSignature   bool       `gorm:"not null"`
	RecipientName       string     `gorm:"type:varchar(255);not null"`
	RecipientPhone      string     `gorm:"type:varchar(32);not null"`
	PickupAddress       string     `gorm:"type:text;not null"`
	DeliveryAddress     string     `gorm:"type:text;not null"`
	PickupLatitude      *float64
	PickupLongitude     *float64
	DeliveryLatitude    *float64
	DeliveryLongitude   *float64
	EstimatedPickup     time.Time `gorm:"not null"`
	EstimatedDelivery   time.Time `gorm:"not null"`
	ActualPickup        *time.Time
	ActualDelivery      *time.Time
	Status              string          `gorm:"type:varchar(32);not null;index"`
	Priority            int             `gorm:"type:int;not null"`
	FeeAmount           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FeeCurrency         string          `gorm:"type:varchar(3);not null"`
	Notes               string          `gorm:"type:text"`
	Version             int64           `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// StatusUpdateDTO represents one row of a delivery's immutable status
// history. Rows are append-only and ordered by created_at.
type StatusUpdateDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status     string     `gorm:"type:varchar(32);not null"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	Location   string     `gorm:"type:varchar(255)"`
	Latitude   *float64
	Longitude  *float64
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for status history entries.
func (StatusUpdateDTO) TableName() string {
	return "delivery_status_updates"
}

// fromDomain converts a delivery domain aggregate to its database
// representation. Pending status history entries are mapped separately
// via updatesFromDomain.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var riderID *uuid.UUID
	if id := d.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	dto := DeliveryDTO{
		ID:                  d.ID().Bytes(),
		TrackingNumber:      d.TrackingNumber().String(),
		SenderID:            d.SenderID().Bytes(),
		RiderID:             riderID,
		PackageDescription:  d.Package().Description(),
		PackageWeightKg:     d.Package().WeightKg(),
		PackageType:         d.Package().PackageType().String(),
		SpecialInstructions: d.Package().SpecialInstructions(),
		Fragile:             d.Package().IsFragile(),
		RequiresSignature:   d.Package().RequiresSignature(),
		RecipientName:       d.RecipientName(),
		RecipientPhone:      d.RecipientPhone(),
		PickupAddress:       d.Route().PickupAddress(),
		DeliveryAddress:     d.Route().DeliveryAddress(),
		EstimatedPickup:     d.EstimatedPickup(),
		EstimatedDelivery:   d.EstimatedDelivery(),
		ActualPickup:        d.ActualPickup(),
		ActualDelivery:      d.ActualDelivery(),
		Status:              d.Status().String(),
		Priority:            int(d.Priority()),
		FeeAmount:           d.Fee().Amount(),
		FeeCurrency:         string(d.Fee().Currency()),
		Notes:               d.Notes(),
		Version:             d.Version(),
	}

	if p := d.Route().PickupPoint(); p != nil {
		lat, lng := p.Latitude(), p.Longitude()
		dto.PickupLatitude, dto.PickupLongitude = &lat, &lng
	}
	if p := d.Route().DeliveryPoint(); p != nil {
		lat, lng := p.Latitude(), p.Longitude()
		dto.DeliveryLatitude, dto.DeliveryLongitude = &lat, &lng
	}

	return dto
}

// updatesFromDomain converts the aggregate's pending history entries to
// their database representation.
func updatesFromDomain(d *delivery.Delivery) []StatusUpdateDTO {
	pending := d.PendingUpdates()
	dtos := make([]StatusUpdateDTO, 0, len(pending))

	for _, u := range pending {
		var actorID *uuid.UUID
		if id := u.ActorID(); id != nil {
			raw := id.Bytes()
			actorID = &raw
		}

		dto := StatusUpdateDTO{
			ID:         u.ID().Bytes(),
			DeliveryID: u.DeliveryID().Bytes(),
			Status:     u.Status().String(),
			ActorID:    actorID,
			Location:   u.Location(),
			Notes:      u.Notes(),
			CreatedAt:  u.CreatedAt(),
		}
		if p := u.Point(); p != nil {
			lat, lng := p.Latitude(), p.Longitude()
			dto.Latitude, dto.Longitude = &lat, &lng
		}

		dtos = append(dtos, dto)
	}

	return dtos
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := delivery.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	packageType, err := delivery.PackageTypeFromString(dto.PackageType)
	if err != nil {
		return nil, err
	}

	pkg, err := delivery.NewPackage(
		dto.PackageDescription,
		dto.PackageWeightKg,
		packageType,
		dto.SpecialInstructions,
		dto.Fragile,
		dto.RequiresSignature,
	)
	if err != nil {
		return nil, err
	}

	pickupPoint, err := pointFromColumns(dto.PickupLatitude, dto.PickupLongitude)
	if err != nil {
		return nil, err
	}
	deliveryPoint, err := pointFromColumns(dto.DeliveryLatitude, dto.DeliveryLongitude)
	if err != nil {
		return nil, err
	}

	route, err := delivery.NewRoute(dto.PickupAddress, dto.DeliveryAddress, pickupPoint, deliveryPoint)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoney(dto.FeeAmount, kernel.Currency(dto.FeeCurrency))
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		trackingNumber,
		senderID,
		riderID,
		pkg,
		dto.RecipientName,
		dto.RecipientPhone,
		route,
		dto.EstimatedPickup,
		dto.EstimatedDelivery,
		dto.ActualPickup,
		dto.ActualDelivery,
		status,
		delivery.Priority(dto.Priority),
		fee,
		dto.Notes,
		dto.Version,
	)
}

func pointFromColumns(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
