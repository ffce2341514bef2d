package bookingqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"slotly-service/internal/app/contracts"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/exceptions"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const bookingCreatedEvent = "appointment.created"

// BookingEvent is the payload published for every confirmed appointment, so
// downstream consumers (notifications, analytics) can react without touching
// the booking flow.
type BookingEvent struct {
	Event         string    `json:"event"`
	AppointmentID string    `json:"appointment_id"`
	DoctorID      string    `json:"doctor_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	PatientName   string    `json:"patient_name"`
	PatientEmail  string    `json:"patient_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Service publishes booking events to a durable RabbitMQ queue with
// publisher confirms.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewService opens a channel, declares the durable queue, and enables
// publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.BookingQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, queueName)
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

// PublishBookingCreated publishes the appointment as a persistent message and
// waits for the broker confirm.
func (s *Service) PublishBookingCreated(ctx context.Context, appointment *models.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("bookingQueue.PublishBookingCreated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)

	event := BookingEvent{
		Event:         bookingCreatedEvent,
		AppointmentID: appointment.ID,
		DoctorID:      appointment.DoctorID,
		Date:          appointment.Date,
		Time:          appointment.Time,
		PatientName:   appointment.PatientName,
		PatientEmail:  appointment.PatientEmail,
		OccurredAt:    time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}
	return nil
}
