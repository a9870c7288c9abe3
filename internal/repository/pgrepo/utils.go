package pgrepo

import (
	"fmt"
	"math"

	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
)

const defaultPageLimit uint = 50

// rowScanner общий интерфейс для pgx.Row и pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// safeConvertUintToInt32 безопасно конвертирует uint в int32. В случае выхода значения за рамки диапазона
// выбрасывает ошибку.
func safeConvertUintToInt32(val uint) (int32, error) {
	if val > uint(math.MaxInt32) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int32(val), nil
}

// pageBounds возвращает limit и offset для запроса. Нулевой лимит заменяется на defaultPageLimit.
func pageBounds(page repoargs.Page) (int32, int32, error) {
	if page.Limit == 0 {
		page.Limit = defaultPageLimit
	}
	limit, limitErr := safeConvertUintToInt32(page.Limit)
	if limitErr != nil {
		return 0, 0, limitErr
	}
	offset, offsetErr := safeConvertUintToInt32(page.Offset)
	if offsetErr != nil {
		return 0, 0, offsetErr
	}
	return limit, offset, nil
}
