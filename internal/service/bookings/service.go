package bookings

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ScheduleGateway/internal/domain"
	"github.com/m04kA/SMC-ScheduleGateway/internal/integrations/simplybook"
	"github.com/m04kA/SMC-ScheduleGateway/internal/service/bookings/models"
)

// Service сервис резервирования: проводит бронирование у провайдера расписаний
// от разрешения клиента до криптографического подтверждения
type Service struct {
	client    SchedulingClient
	secretKey string
	logger    Logger
}

// NewService создает новый сервис резервирования
// secretKey — общий секрет провайдера для подписи подтверждений
func NewService(client SchedulingClient, secretKey string, logger Logger) *Service {
	return &Service{
		client:    client,
		secretKey: secretKey,
		logger:    logger,
	}
}

// Reserve создает бронирование у провайдера
//
// Последовательность: разрешение клиента по email -> подбор исполнителя
// (если не задан) -> процедура book -> подтверждение подписью для каждого
// под-бронирования, если провайдер этого требует
func (s *Service) Reserve(ctx context.Context, req *models.ReserveRequest) (*domain.ReservationResult, error) {
	date, timeOfDay, err := domain.SplitDatetime(req.Datetime)
	if err != nil {
		s.logger.Warn("Reserve: invalid datetime %q", req.Datetime)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDatetime, err)
	}

	count := req.Count
	if count <= 0 {
		count = domain.DefaultPartySize
	}

	// 1. Разрешаем клиента по email
	clientData := s.resolveClient(ctx, req.Client)

	// 2. Подбираем исполнителя, если он не задан
	performerID, err := s.resolvePerformer(ctx, req, date, timeOfDay, count)
	if err != nil {
		return nil, err
	}

	// 3. Создаем бронирование
	result, err := s.client.Book(ctx, &simplybook.BookRequest{
		ServiceID:        req.ServiceID,
		PerformerID:      performerID,
		Date:             date,
		Time:             timeOfDay,
		Client:           clientData,
		AdditionalFields: req.AdditionalFields,
		Count:            count,
	})
	if err != nil {
		s.logger.Error("Reserve: book failed for service=%s datetime=%s: %v", req.ServiceID, req.Datetime, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}

	reservation := &domain.ReservationResult{}
	for _, b := range result.Bookings {
		reservation.BookingIDs = append(reservation.BookingIDs, b.ID)
	}

	s.logger.Info("Reserve: booked service=%s date=%s time=%s performer=%s bookings=%v requireConfirm=%v",
		req.ServiceID, date, timeOfDay, performerID, reservation.BookingIDs, result.RequireConfirm)

	// 4. Подтверждаем подписью, если провайдер требует
	if result.RequireConfirm {
		for _, b := range result.Bookings {
			signature := s.sign(b.ID, b.Hash)
			if err := s.client.ConfirmBook(ctx, b.ID, signature); err != nil {
				s.logger.Error("Reserve: confirmation failed for booking id=%s: %v", b.ID, err)
				return reservation, fmt.Errorf("%w: booking id=%s: %v", ErrConfirmationFailed, b.ID, err)
			}
			s.logger.Info("Reserve: booking id=%s confirmed", b.ID)
		}
		reservation.Confirmed = true
	}

	return reservation, nil
}

// resolveClient ищет клиента по email и создает при отсутствии
//
// Ошибка поиска трактуется как "не найден" и не прерывает бронирование;
// идентификатор клиента — оптимизация, провайдер принимает бронирование
// и по одним контактным данным
func (s *Service) resolveClient(ctx context.Context, client domain.ClientData) map[string]interface{} {
	clientData := map[string]interface{}{
		"name":  client.Name,
		"email": client.Email,
		"phone": client.Phone,
	}

	records, err := s.client.GetClientList(ctx, client.Email)
	if err != nil {
		s.logger.Warn("resolveClient: lookup failed for email=%s, treating as absent: %v", client.Email, err)
		records = nil
	}

	for _, rec := range records {
		email := simplybook.AsString(rec["email"])
		if strings.EqualFold(email, client.Email) {
			if id := simplybook.AsString(rec["id"]); id != "" {
				s.logger.Info("resolveClient: found existing client id=%s for email=%s", id, client.Email)
				clientData["id"] = id
				return clientData
			}
		}
	}

	id, err := s.client.AddClient(ctx, clientData)
	if err != nil {
		// Создание тоже не фатально: провайдер создаст клиента при бронировании
		s.logger.Warn("resolveClient: create failed for email=%s, booking with bare contact data: %v", client.Email, err)
		return clientData
	}

	s.logger.Info("resolveClient: created client id=%s for email=%s", id, client.Email)
	clientData["id"] = id
	return clientData
}

// resolvePerformer возвращает идентификатор исполнителя
// Если исполнитель не задан, запрашивает свободных на выбранное время и берет первого
func (s *Service) resolvePerformer(ctx context.Context, req *models.ReserveRequest, date, timeOfDay string, count int) (string, error) {
	if req.PerformerID != nil && *req.PerformerID != "" {
		return *req.PerformerID, nil
	}

	datetime := date + " " + timeOfDay + ":00"
	units, err := s.client.GetAvailableUnits(ctx, req.ServiceID, datetime, count)
	if err != nil {
		s.logger.Error("resolvePerformer: getAvailableUnits failed for service=%s datetime=%s: %v",
			req.ServiceID, datetime, err)
		return "", fmt.Errorf("%w: failed to resolve performer: %v", ErrInternal, err)
	}

	if len(units) == 0 {
		s.logger.Warn("resolvePerformer: no units available for service=%s datetime=%s", req.ServiceID, datetime)
		return "", ErrNoPerformerAvailable
	}

	s.logger.Info("resolvePerformer: auto-selected performer=%s for service=%s", units[0], req.ServiceID)
	return units[0], nil
}

// sign вычисляет подпись подтверждения бронирования:
// hex md5 от конкатенации id бронирования, его hash и общего секрета
func (s *Service) sign(bookingID, bookingHash string) string {
	sum := md5.Sum([]byte(bookingID + bookingHash + s.secretKey))
	return hex.EncodeToString(sum[:])
}

// IsSevereFailure возвращает true для ошибок, означающих рассинхронизацию
// оплаченного платежа и бронирования (деньги списаны, брони нет)
func IsSevereFailure(err error) bool {
	return errors.Is(err, ErrBookingFailed) ||
		errors.Is(err, ErrConfirmationFailed) ||
		errors.Is(err, ErrNoPerformerAvailable)
}
