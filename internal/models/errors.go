package models

import "errors"

// Базовые ошибки сервисов, хендлеры маппят их на HTTP-статусы
var (
	ErrNotFound           = errors.New("запись не найдена")
	ErrValidation         = errors.New("некорректные данные запроса")
	ErrEmailExists        = errors.New("email уже зарегистрирован")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
)
