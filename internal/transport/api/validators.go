package api

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/paywallet/internal/domain"
)

var validatorsOnce = sync.OnceValue(func() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validator registration: unexpected binding engine")
	}
	// в ошибках валидации поля называются так же, как в JSON.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	validations := map[string]validator.Func{
		"max_bytes":    validateMaxBytes,
		"load_method":  validateLoadMethod,
		"payout_speed": validatePayoutSpeed,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validator registration: %s", err.Error())
		}
	}
	return nil
})

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// validateLoadMethod способ пополнения, доступный пользователю (TOPUP только для администратора).
func validateLoadMethod(fl validator.FieldLevel) bool {
	method, ok := fl.Field().Interface().(domain.TransactionType)
	return ok && method.IsLoadMethod()
}

func validatePayoutSpeed(fl validator.FieldLevel) bool {
	speed, ok := fl.Field().Interface().(domain.PayoutSpeed)
	if !ok {
		return false
	}
	_, err := domain.PayoutFee(0, speed)
	return err == nil
}

func registerValidators() error {
	return validatorsOnce()
}
