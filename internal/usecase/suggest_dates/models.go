package suggest_dates

import "time"

// Request модель запроса на поиск альтернативных дат
type Request struct {
	OperatorID int64     // ID оператора
	Services   []string  // Выбранные услуги (определяют длительность)
	FromDate   time.Time // Дата, на которой не нашлось слотов
}

// Response модель ответа со списком альтернативных дат
type Response struct {
	OperatorID      int64       // ID оператора
	FromDate        time.Time   // Дата, от которой шло сканирование
	DurationMinutes int         // Требуемая длительность (услуги + буфер)
	Dates           []time.Time // До трех ближайших дат со свободными слотами
}
