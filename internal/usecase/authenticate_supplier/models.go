package authenticate_supplier

// Request модель запроса на аутентификацию поставщика
type Request struct {
	SupplierID string // Логин
	Secret     string // Пароль
}

// Response модель успешной аутентификации
type Response struct {
	SupplierID   string   // Нормализованный логин
	PrimaryEmail string   // Email для уведомлений; пустой - валидное состояние
	CCEmails     []string // Дополнительные адреса для копии
}
