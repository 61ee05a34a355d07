package service

import (
	"context"
	"strconv"
	"time"

	"github.com/johnzhangfit/verttracker/internal/apperrors"
	"github.com/johnzhangfit/verttracker/internal/jump"
	"github.com/johnzhangfit/verttracker/internal/model"
	"github.com/johnzhangfit/verttracker/internal/repository"
	"github.com/johnzhangfit/verttracker/internal/units"
)

type JumpService struct {
	jumpRepo repository.JumpRepo
	userRepo repository.UserRepo

	// now is swappable for window tests.
	now func() time.Time
}

func NewJumpService(jumpRepo repository.JumpRepo, userRepo repository.UserRepo) *JumpService {
	return &JumpService{
		jumpRepo: jumpRepo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RecordInput is a validated-on-entry measurement from the record-jump endpoint.
type RecordInput struct {
	Variant    string
	HangTime   float64
	BodyWeight float64
	Note       *string
}

// Record derives the jump height from hang time and persists the record with
// canonical SI values.
func (s *JumpService) Record(ctx context.Context, userID string, in RecordInput) error {
	if in.Variant != model.VariantMax && in.Variant != model.VariantCMJ {
		return apperrors.Validation("variant must be either 'MAX' (maximum approach jump) or 'CMJ' (counter movement jump)")
	}
	height, err := jump.HeightFromHangTime(in.HangTime)
	if err != nil {
		return err
	}
	if in.BodyWeight <= 0 {
		return apperrors.Validation("body-weight must be a positive floating point value")
	}

	// Tokens can outlive accounts; make sure the subject still exists.
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return apperrors.ErrTokenInvalid
	}

	return s.jumpRepo.Create(ctx, &model.JumpRecord{
		UserID:  userID,
		Variant: in.Variant,
		Height:  height,
		Weight:  in.BodyWeight,
		Note:    in.Note,
	})
}

// JumpsQuery carries the raw query-string tokens of the jumps endpoint.
// Everything is validated here, not in the handler, so the rules stay
// independent of gin.
type JumpsQuery struct {
	Variant     string // "" = all variants
	Aggregation string // "" = no aggregation
	HeightUnit  string
	WeightUnit  string
	UTCOffset   string
	OrderBy     string
}

// Query runs the full read pipeline: filter, per-day aggregation, unit
// conversion, then ordering.
func (s *JumpService) Query(ctx context.Context, userID string, q JumpsQuery) ([]jump.Entry, error) {
	if err := validateVariant(q.Variant, false); err != nil {
		return nil, err
	}
	if q.Aggregation == jump.AggregationAvg && q.Variant == "" {
		return nil, apperrors.Validation("variant must be specified when aggregation is 'avg'")
	}
	heightFactor, err := units.HeightFactor(q.HeightUnit)
	if err != nil {
		return nil, err
	}
	weightFactor, err := units.WeightFactor(q.WeightUnit)
	if err != nil {
		return nil, err
	}
	utcOffset, err := parseUTCOffset(q.UTCOffset)
	if err != nil {
		return nil, err
	}

	records, err := s.jumpRepo.ListByUser(ctx, userID, q.Variant)
	if err != nil {
		return nil, err
	}

	entries, err := jump.Aggregate(records, q.Aggregation, utcOffset)
	if err != nil {
		return nil, err
	}
	jump.Convert(entries, heightFactor, weightFactor)
	if err := jump.Sort(entries, q.OrderBy); err != nil {
		return nil, err
	}
	return entries, nil
}

func validateVariant(variant string, required bool) error {
	switch variant {
	case model.VariantMax, model.VariantCMJ:
		return nil
	case "":
		if !required {
			return nil
		}
	}
	return apperrors.Validation("variant must be either 'MAX' (maximum approach jump) or 'CMJ' (counter movement jump)")
}

func parseUTCOffset(s string) (int, error) {
	offset, err := strconv.Atoi(s)
	if err != nil || offset < -12 || offset > 14 {
		return 0, apperrors.Validation("utc-offset must be an integer from -12 to 14")
	}
	return offset, nil
}
