package percentile

import (
	"context"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/utils"
	"go.uber.org/zap"
)

// AssessMeasurement ranks every recorded dimension of m. Dimensions with no
// value, or measured at an age outside the reference range, are left unset.
func AssessMeasurement(ctx context.Context, sex model.Sex, m *model.GrowthMeasurement) (res *model.Assessment, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("AssessMeasurement recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Any("measurement", m))
			res, err = nil, common.ErrorInvalidValue
		}
	}()

	if m == nil || !sex.Valid() {
		logger.Error("invalid assess input", zap.String("sex", string(sex)), zap.Bool("nilMeasurement", m == nil))
		return nil, common.ErrorInvalidValue
	}

	res = &model.Assessment{
		MeasurementID: m.ID,
		AgeInDays:     m.AgeInDays,
	}

	for _, t := range model.AllMeasurementTypes {
		value := m.Value(t)
		if value <= 0 {
			continue
		}
		percentile, ok := CalculatePercentile(value, m.AgeInDays, t, sex)
		if !ok {
			logger.Debug("age out of reference range, skip", zap.String("measurement", m.ID),
				zap.String("type", string(t)), zap.Int("ageInDays", m.AgeInDays))
			continue
		}
		res.SetPercentile(t, percentile)
	}

	return res, nil
}

// AssessHistory assesses each measurement against the profile's sex, taking
// its age from the profile birth date. The measurements are not modified.
// Rerun it whenever the profile changes.
func AssessHistory(ctx context.Context, profile *model.BabyProfile,
	measurements []*model.GrowthMeasurement) ([]*model.Assessment, error) {
	logger := utils.GetLogger(ctx)

	if profile == nil || !profile.Sex.Valid() {
		logger.Error("invalid profile", zap.Any("profile", profile))
		return nil, common.ErrorInvalidValue
	}

	res := make([]*model.Assessment, 0, len(measurements))
	for _, m := range measurements {
		if m == nil {
			continue
		}
		measured := *m
		measured.AgeInDays = utils.AgeInDays(profile.BirthDate, m.Date)
		assessment, err := AssessMeasurement(ctx, profile.Sex, &measured)
		if err != nil {
			logger.Error("AssessMeasurement failed", zap.Error(err), zap.String("measurement", m.ID))
			return nil, err
		}
		res = append(res, assessment)
	}

	logger.Info("assess history success", zap.String("profile", profile.ID), zap.Int("count", len(res)))
	return res, nil
}
