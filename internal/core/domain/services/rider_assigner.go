package services

import (
	"errors"

	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/profile"
)

// ErrRiderNotFound is returned when no eligible rider is available for a
// delivery. This occurs when either no riders are provided or none of the
// provided riders is an approved, available rider.
var ErrRiderNotFound = errors.New("rider not found")

// ErrIneligibleRider is returned when assigning a specific rider who is not
// an approved, available rider-capable profile.
var ErrIneligibleRider = errors.New("rider is not eligible for assignment")

// RiderAssigner is a domain service binding deliveries to riders.
//
// Business rules:
//   - only approved rider-capable profiles that marked themselves available
//     are eligible
//   - riders with fewer active assignments are preferred; ties break on the
//     higher rating
//   - the delivery transitions to assigned as part of the binding
type RiderAssigner struct{}

// NewRiderAssigner creates a new RiderAssigner instance.
func NewRiderAssigner() RiderAssigner {
	return RiderAssigner{}
}

// candidate pairs a rider with their current active delivery count,
// supplied by the caller from the store.
type Candidate struct {
	Rider       *profile.UserProfile
	ActiveCount int
}

// Assign binds a specific rider to the delivery after checking eligibility.
// Used when an operator picks the rider by hand.
func (r RiderAssigner) Assign(d *delivery.Delivery, rider *profile.UserProfile) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := rider.Validate(); err != nil {
		return err
	}

	if !rider.IsEligibleForAssignment() {
		return ErrIneligibleRider
	}

	return d.AssignRider(rider.ID(), nil)
}

// AssignBest picks the least-loaded eligible rider and binds them to the
// delivery. Used by the auto-assignment sweep.
func (r RiderAssigner) AssignBest(d *delivery.Delivery, candidates []Candidate) (*profile.UserProfile, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	best, err := r.findBestRider(candidates)
	if err != nil {
		return nil, err
	}

	if err = d.AssignRider(best.ID(), nil); err != nil {
		return nil, err
	}

	return best, nil
}

func (r RiderAssigner) findBestRider(candidates []Candidate) (*profile.UserProfile, error) {
	var (
		best      *profile.UserProfile
		bestLoad  int
		bestScore float64
	)

	for _, c := range candidates {
		if err := c.Rider.Validate(); err != nil {
			return nil, err
		}
		if !c.Rider.IsEligibleForAssignment() {
			continue
		}

		rating := c.Rider.RiderDetails().Rating()
		if best == nil ||
			c.ActiveCount < bestLoad ||
			(c.ActiveCount == bestLoad && rating > bestScore) {
			best = c.Rider
			bestLoad = c.ActiveCount
			bestScore = rating
		}
	}

	if best == nil {
		return nil, ErrRiderNotFound
	}
	return best, nil
}
