package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

var (
	// ErrInvalidYearMonth параметры year и month не числа
	ErrInvalidYearMonth = errors.New("year and month must be integers")

	// ErrInvalidID идентификатор в пути не положительное число
	ErrInvalidID = errors.New("id must be a positive integer")
)

// ParseYearMonth читает year и month из query. Без параметров берется текущий месяц по KST.
func ParseYearMonth(r *http.Request, now time.Time) (int, int, error) {
	query := r.URL.Query()
	rawYear, rawMonth := query.Get("year"), query.Get("month")

	current := now.In(datekey.Location())
	if rawYear == "" && rawMonth == "" {
		return current.Year(), int(current.Month()), nil
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return 0, 0, ErrInvalidYearMonth
	}
	month, err := strconv.Atoi(rawMonth)
	if err != nil {
		return 0, 0, ErrInvalidYearMonth
	}
	return year, month, nil
}

// ParseID разбирает положительный int64 из параметра пути
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
