package domain

// StoreSettings настройки магазина, которые читает движок расписания
type StoreSettings struct {
	StoreName       string
	Address         string
	AcceptPreorders bool // Разрешены ли заказы на будущий слот, пока магазин закрыт
}
