package delivery

import (
	"errors"
	"fmt"

	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// PackageType classifies the physical shipment for handling purposes.
type PackageType int

const (
	PackageTypeUnknown PackageType = iota
	PackageTypeDocument
	PackageTypeParcel
	PackageTypeFragile
	PackageTypePerishable
	PackageTypeElectronic
	PackageTypeClothing
	PackageTypeFood
	PackageTypeOther
)

var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		PackageTypeDocument:   "document",
		PackageTypeParcel:     "parcel",
		PackageTypeFragile:    "fragile",
		PackageTypePerishable: "perishable",
		PackageTypeElectronic: "electronic",
		PackageTypeClothing:   "clothing",
		PackageTypeFood:       "food",
		PackageTypeOther:      "other",
	}
}

// PackageTypeFromString parses the wire representation of a package type.
func PackageTypeFromString(s string) (PackageType, error) {
	for pt, str := range getPackageTypeStrings() {
		if str == s {
			return pt, nil
		}
	}
	return PackageTypeUnknown, errs.NewValueIsInvalidErrorWithCause("package type",
		fmt.Errorf("%q is not a recognized package type", s))
}

func (p PackageType) Validate() error {
	if _, ok := getPackageTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("package type",
			fmt.Errorf("%d is not a valid package type", p))
	}
	return nil
}

func (p PackageType) String() string {
	if str, ok := getPackageTypeStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Package describes the physical shipment owned by exactly one Delivery.
// It is immutable once wrapped in a Delivery; corrective admin edits replace
// the whole value.
type Package struct { //nolint:recvcheck //using for validation
	description         string
	weightKg            decimal.Decimal
	packageType         PackageType
	specialInstructions string
	fragile             bool
	requiresSignature   bool

	guard guard.ConstructorGuard
}

// NewPackage creates a Package, requiring a description, a positive weight
// and a recognized package type.
func NewPackage(
	description string,
	weightKg decimal.Decimal,
	packageType PackageType,
	specialInstructions string,
	fragile bool,
	requiresSignature bool,
) (Package, error) {
	pkg := Package{
		specialInstructions: specialInstructions,
		fragile:             fragile,
		requiresSignature:   requiresSignature,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setDescription(description),
		pkg.setWeightKg(weightKg),
		pkg.setPackageType(packageType),
	); err != nil {
		return Package{}, err
	}

	return pkg, nil
}

func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

func (p Package) Description() string {
	return p.description
}

func (p Package) WeightKg() decimal.Decimal {
	return p.weightKg
}

func (p Package) PackageType() PackageType {
	return p.packageType
}

func (p Package) SpecialInstructions() string {
	return p.specialInstructions
}

func (p Package) IsFragile() bool {
	return p.fragile
}

func (p Package) RequiresSignature() bool {
	return p.requiresSignature
}

func (p *Package) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("package description")
	}
	p.description = description
	return nil
}

func (p *Package) setWeightKg(weightKg decimal.Decimal) error {
	if !weightKg.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("package weight",
			fmt.Errorf("%s kg is not greater than 0", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Package) setPackageType(packageType PackageType) error {
	if err := packageType.Validate(); err != nil {
		return err
	}
	p.packageType = packageType
	return nil
}
