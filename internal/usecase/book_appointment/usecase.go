package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	"github.com/m04kA/SMC-DentalCareService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-DentalCareService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-DentalCareService/internal/integrations/webhook"
)

// UseCase use case создания записи на прием.
// Слот бронируется, только если врач назначен на это время (расписание)
// И слот еще не закреплен за другим пациентом (реестр)
type UseCase struct {
	serviceCatalog ServiceCatalog
	scheduleStore  ScheduleStore
	bookingLedger  BookingLedger
	sink           NotificationSink
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// sink может быть nil — тогда уведомления не отправляются
func NewUseCase(
	serviceCatalog ServiceCatalog,
	scheduleStore ScheduleStore,
	bookingLedger BookingLedger,
	sink NotificationSink,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceCatalog: serviceCatalog,
		scheduleStore:  scheduleStore,
		bookingLedger:  bookingLedger,
		sink:           sink,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет попытку бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: doctor=%s, date=%s, time=%s, service=%q",
		req.Doctor, req.Date, req.Time, req.ServiceQuery)

	// 1. Проверяем синтаксис email до любых обращений к каталогу и расписанию
	if err := validateEmail(req.Email); err != nil {
		uc.logger.Warn("BookAppointment: email validation failed")
		return nil, err
	}

	// 2. Разрешаем услугу по свободному тексту.
	// При неудаче возвращаем подсказки для повторного ввода
	service, err := uc.serviceCatalog.FindBestMatch(req.ServiceQuery)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			suggestions := uc.serviceCatalog.Suggest(req.ServiceQuery)
			uc.logger.Warn("BookAppointment: service %q not matched, %d suggestions",
				req.ServiceQuery, len(suggestions))
			return nil, &ServiceUnmatchedError{
				Query:       req.ServiceQuery,
				Suggestions: suggestions,
			}
		}
		uc.logger.Error("BookAppointment: failed to resolve service %q: %v", req.ServiceQuery, err)
		return nil, fmt.Errorf("%w: failed to resolve service: %v", ErrInternal, err)
	}

	// 3. Разбираем дату и время. Ошибка формата фатальна для попытки
	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("BookAppointment: date validation failed: %v", err)
		return nil, err
	}

	clock, err := parseTime(req.Time)
	if err != nil {
		uc.logger.Warn("BookAppointment: time validation failed: %v", err)
		return nil, err
	}

	// 4. Слот уже закреплен за кем-то — отказ без предложения альтернатив
	if uc.bookingLedger.IsTaken(req.Doctor, date, clock) {
		uc.logger.Warn("BookAppointment: slot already booked: doctor=%s, date=%s, time=%s",
			req.Doctor, req.Date, req.Time)
		return nil, ErrSlotAlreadyBooked
	}

	// 5. Врач не назначен на это время — отказ со списком его времен на эту дату
	if !uc.scheduleStore.IsAvailable(req.Doctor, date, clock) {
		freeSlots := uc.scheduleStore.FreeSlotsFor(req.Doctor, date)
		uc.logger.Warn("BookAppointment: slot unavailable: doctor=%s, date=%s, time=%s, %d alternatives",
			req.Doctor, req.Date, req.Time, len(freeSlots))
		return nil, &SlotUnavailableError{
			Doctor:    req.Doctor,
			Date:      date,
			FreeSlots: freeSlots,
		}
	}

	// 6. Атомарно закрепляем слот. Проигрыш гонки между шагами 4 и 6
	// неотличим для пациента от занятого слота
	if err := uc.bookingLedger.Commit(req.Doctor, date, clock); err != nil {
		if errors.Is(err, ledger.ErrSlotAlreadyTaken) {
			uc.logger.Warn("BookAppointment: lost commit race: doctor=%s, date=%s, time=%s",
				req.Doctor, req.Date, req.Time)
			return nil, ErrSlotAlreadyBooked
		}
		uc.logger.Error("BookAppointment: failed to commit slot: %v", err)
		return nil, fmt.Errorf("%w: failed to commit slot: %v", ErrInternal, err)
	}

	uc.logger.Info("BookAppointment: slot committed: doctor=%s, date=%s, time=%s, service=%s",
		req.Doctor, req.Date, req.Time, service.Name)

	record := domain.BookingRecord{
		Doctor:       req.Doctor,
		Date:         date,
		Time:         clock,
		PatientName:  req.PatientName,
		Email:        req.Email,
		ServiceName:  service.Name,
		ServicePrice: service.PriceUAH,
		CreatedAt:    uc.timeProvider.Now(),
	}

	// 7. Отправляем уведомление. Неудача доставки логируется,
	// но закрепленное бронирование не откатывается
	delivered := uc.notify(ctx, req, service.Name)

	return &Response{
		BookingRecord:         record,
		NotificationDelivered: delivered,
	}, nil
}

// notify отправляет событие бронирования приемнику уведомлений.
// Выполняется строго после закрепления слота и вне каких-либо блокировок
func (uc *UseCase) notify(ctx context.Context, req *Request, serviceName string) bool {
	if uc.sink == nil {
		uc.logger.Info("BookAppointment: notification sink disabled, skipping delivery")
		return false
	}

	event := &webhook.Event{
		PatientName: req.PatientName,
		Email:       req.Email,
		Service:     serviceName,
		Doctor:      req.Doctor,
		Date:        req.Date,
		Time:        req.Time,
	}

	if err := uc.sink.Send(ctx, event); err != nil {
		uc.logger.Warn("BookAppointment: notification delivery failed: %v", err)
		return false
	}

	return true
}
