package scheduling

import "github.com/aliakbar-zohour/SalonBookingService/internal/domain"

// ResolveDuration вычисляет суммарную длительность выбранных услуг в минутах.
// К сумме один раз добавляется буфер ServiceBufferMinutes, если выбрана хотя бы одна услуга.
// Пустой выбор даёт 0 - вызывающий обязан трактовать 0 как "услуги не выбраны"
// и не запускать расчёт слотов.
//
// Неизвестные названия услуг дают 0 минут и возвращаются вторым значением,
// чтобы вызывающий мог их залогировать. Поведение "неизвестная услуга = 0"
// сохранено сознательно: жёсткая ошибка отвергала бы старые бронирования,
// чьи услуги уже убраны из каталога.
func ResolveDuration(selected []string, durations map[string]int) (int, []string) {
	if len(selected) == 0 {
		return 0, nil
	}

	total := 0
	var unknown []string

	for _, name := range selected {
		d, ok := durations[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		total += d
	}

	return total + domain.ServiceBufferMinutes, unknown
}
