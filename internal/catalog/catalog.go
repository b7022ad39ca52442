package catalog

import (
	"errors"
	"fmt"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
	"github.com/aliakbar-zohour/SalonBookingService/internal/scheduling"
)

var (
	// ErrEmptyCatalog возвращается при попытке создать каталог без услуг
	ErrEmptyCatalog = errors.New("catalog: no services defined")

	// ErrInvalidDuration возвращается, когда у услуги неположительная длительность
	ErrInvalidDuration = errors.New("catalog: service duration must be positive")

	// ErrDuplicateService возвращается при повторяющемся названии услуги
	ErrDuplicateService = errors.New("catalog: duplicate service name")
)

// Catalog статический каталог услуг: загружается один раз при старте,
// после этого не изменяется
type Catalog struct {
	services  []domain.CatalogService
	durations map[string]int
}

// New создает каталог из списка услуг с валидацией
func New(services []domain.CatalogService) (*Catalog, error) {
	if len(services) == 0 {
		return nil, ErrEmptyCatalog
	}

	durations := make(map[string]int, len(services))
	for _, svc := range services {
		if svc.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: %s (%d)", ErrInvalidDuration, svc.Name, svc.DurationMinutes)
		}
		if _, exists := durations[svc.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateService, svc.Name)
		}
		durations[svc.Name] = svc.DurationMinutes
	}

	return &Catalog{
		services:  services,
		durations: durations,
	}, nil
}

// Default возвращает встроенный каталог салона.
// Используется, когда в конфигурации не перечислены услуги.
func Default() *Catalog {
	c, err := New([]domain.CatalogService{
		{Name: "اصلاح", DurationMinutes: 20},
		{Name: "ماساژ", DurationMinutes: 30},
		{Name: "ناخن", DurationMinutes: 35},
		{Name: "پوست", DurationMinutes: 40},
		{Name: "مو", DurationMinutes: 45},
		{Name: "آرایش", DurationMinutes: 60},
	})
	if err != nil {
		// Встроенный каталог валиден по построению
		panic(err)
	}
	return c
}

// Services возвращает список услуг в порядке загрузки
func (c *Catalog) Services() []domain.CatalogService {
	return c.services
}

// Contains возвращает true, если услуга есть в каталоге
func (c *Catalog) Contains(name string) bool {
	_, ok := c.durations[name]
	return ok
}

// ResolveDuration вычисляет суммарную длительность выбранных услуг.
// Вторым значением возвращаются названия, отсутствующие в каталоге:
// они дают 0 минут, но вызывающий должен их залогировать.
func (c *Catalog) ResolveDuration(selected []string) (int, []string) {
	return scheduling.ResolveDuration(selected, c.durations)
}
