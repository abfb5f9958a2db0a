package catalogservice

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// activityDocument документ активности во внешнем хранилище.
// Поля документов не гарантированы: отсутствуют, приходят null,
// числа приходят строками, списки - не списками.
type activityDocument struct {
	ID          looseString     `json:"id"`
	Name        looseString     `json:"name"`
	Description looseString     `json:"description"`
	Type        looseString     `json:"type"`
	City        looseString     `json:"city"`
	Beach       looseString     `json:"beach"`
	Price       looseFloat      `json:"price"`
	Tags        json.RawMessage `json:"tags"`
	Slots       json.RawMessage `json:"slots"`
}

// slotDocument документ слота внутри активности
type slotDocument struct {
	Period   looseString `json:"period"`
	Time     looseString `json:"time"`
	Locality looseString `json:"locality"`
	Capacity looseInt    `json:"capacity"`
	Enrolled looseInt    `json:"enrolled"`
	Weekday  looseString `json:"weekday"`
}

// looseString строка; числа и bool превращаются в текст, остальное - в ""
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9') || trimmed[0] == 't' || trimmed[0] == 'f') {
		*s = looseString(trimmed)
		return nil
	}
	*s = ""
	return nil
}

// looseFloat число; строки с числом парсятся (допускается запятая как разделитель), остальное - 0
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	*f = looseFloat(parseLooseNumber(data))
	return nil
}

// looseInt целое число; дробные значения отбрасывают дробную часть, остальное - 0
type looseInt int

func (i *looseInt) UnmarshalJSON(data []byte) error {
	number := math.Trunc(parseLooseNumber(data))
	switch {
	case number > math.MaxInt32:
		number = math.MaxInt32
	case number < math.MinInt32:
		number = math.MinInt32
	}
	*i = looseInt(int(number))
	return nil
}

func parseLooseNumber(data []byte) float64 {
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		return finiteOrZero(number)
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return 0
	}
	str = strings.ReplaceAll(strings.TrimSpace(str), ",", ".")
	number, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(number)
}

// isNull проверяет, что элемент массива - литерал null
func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
