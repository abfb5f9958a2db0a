package get_weekly_schedule

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	for name, value := range map[string]string{
		"type":     req.Type,
		"city":     req.City,
		"beach":    req.Beach,
		"locality": req.Locality,
		"weekday":  req.Weekday,
	} {
		if utf8.RuneCountInString(value) > domain.MaxFilterValueLength {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, name, domain.MaxFilterValueLength)
		}
	}

	weekday := domain.Weekday(req.Weekday)
	if !domain.IsAll(weekday) && !weekday.IsCanonical() {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, req.Weekday)
	}

	for name, price := range map[string]*float64{"minPrice": req.MinPrice, "maxPrice": req.MaxPrice} {
		if price == nil {
			continue
		}
		if math.IsNaN(*price) || math.IsInf(*price, 0) || *price < 0 {
			return fmt.Errorf("%w: %s must be a non-negative finite number", ErrInvalidInput, name)
		}
	}
	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return fmt.Errorf("%w: minPrice must not exceed maxPrice", ErrInvalidInput)
	}

	return nil
}

// toCriteria строит критерии фильтрации поверх значений по умолчанию
func toCriteria(req *Request) domain.FilterCriteria {
	criteria := domain.DefaultFilterCriteria()
	if req.Type != "" {
		criteria.Type = domain.ActivityType(req.Type)
	}
	if req.City != "" {
		criteria.City = req.City
	}
	if req.Beach != "" {
		criteria.Beach = req.Beach
	}
	if req.Locality != "" {
		criteria.Locality = domain.Locality(req.Locality)
	}
	if req.Weekday != "" {
		criteria.Weekday = domain.Weekday(req.Weekday)
	}
	if req.MinPrice != nil {
		criteria.PriceRange.Min = *req.MinPrice
	}
	if req.MaxPrice != nil {
		criteria.PriceRange.Max = *req.MaxPrice
	}
	return criteria
}
