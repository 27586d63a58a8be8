package authenticate_supplier

import "errors"

var (
	// ErrInvalidInput возвращается при пустом логине или пароле
	ErrInvalidInput = errors.New("authenticate_supplier: invalid input data")

	// ErrSupplierNotFound возвращается, когда поставщик с таким логином
	// не найден. Имеет приоритет над ErrWrongSecret.
	ErrSupplierNotFound = errors.New("authenticate_supplier: supplier not found")

	// ErrWrongSecret возвращается, когда логин найден, но пароль не совпал
	ErrWrongSecret = errors.New("authenticate_supplier: wrong secret")

	// ErrRemoteUnavailable возвращается при недоступности Identity Store
	ErrRemoteUnavailable = errors.New("authenticate_supplier: identity store unavailable")
)
