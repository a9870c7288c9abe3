package domain

import (
	"github.com/shopspring/decimal"
)

type PayoutSpeed string

const (
	PayoutSpeedStandard PayoutSpeed = "STANDARD"
	PayoutSpeedSameDay  PayoutSpeed = "SAME_DAY"
	PayoutSpeedInstant  PayoutSpeed = "INSTANT"
)

const sameDayPayoutFeeCents int64 = 300

var instantPayoutFeeRate = decimal.RequireFromString("0.015")

// PayoutFee считает комиссию вывода средств в центах в зависимости от скорости.
// Мгновенный вывод стоит 1.5% от суммы с округлением до цента, вывод в тот же день фиксированные $3.
func PayoutFee(amountCents int64, speed PayoutSpeed) (int64, error) {
	switch speed {
	case PayoutSpeedStandard, "":
		return 0, nil
	case PayoutSpeedSameDay:
		return sameDayPayoutFeeCents, nil
	case PayoutSpeedInstant:
		return decimal.NewFromInt(amountCents).Mul(instantPayoutFeeRate).Round(0).IntPart(), nil
	default:
		return 0, NewValidationError("speed", "unknown payout speed "+string(speed))
	}
}
