package filter_activities

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

	if utf8.RuneCountInString(req.SearchText) > domain.MaxSearchTextLength {
		return fmt.Errorf("%w: search text exceeds %d characters", ErrInvalidInput, domain.MaxSearchTextLength)
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

	if err := validatePrice("minPrice", req.MinPrice); err != nil {
		return err
	}
	if err := validatePrice("maxPrice", req.MaxPrice); err != nil {
		return err
	}
	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return fmt.Errorf("%w: minPrice must not exceed maxPrice", ErrInvalidInput)
	}

	return nil
}

func validatePrice(name string, price *float64) error {
	if price == nil {
		return nil
	}
	if math.IsNaN(*price) || math.IsInf(*price, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, name)
	}
	if *price < 0 {
		return fmt.Errorf("%w: %s must be non-negative", ErrInvalidInput, name)
	}
	return nil
}

// toCriteria строит критерии фильтрации поверх значений по умолчанию
func toCriteria(req *Request) domain.FilterCriteria {
	criteria := domain.DefaultFilterCriteria()
	criteria.SearchText = req.SearchText
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
