package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
)

const confirmationSubject = "Confirmación de Reserva para Entrega de Mercadería"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки SMTP-отправителя
type Config struct {
	Host      string
	Port      int
	User      string
	Password  string
	From      string
	DefaultCC []string // адреса склада, получающие копию каждого подтверждения
	Timeout   time.Duration
}

// Client отправитель писем с подтверждением бронирования
type Client struct {
	cfg Config
	log Logger
}

// NewClient создает новый экземпляр отправителя
func NewClient(cfg Config, log Logger) *Client {
	return &Client{cfg: cfg, log: log}
}

// SendBookingConfirmation отправляет поставщику подтверждение бронирования.
// cc поставщика объединяется с DefaultCC из конфигурации.
func (c *Client) SendBookingConfirmation(ctx context.Context, to string, cc []string, booking domain.Booking) error {
	if strings.TrimSpace(to) == "" {
		return ErrNoRecipient
	}

	msg := mail.NewMsg()
	if err := msg.From(c.cfg.From); err != nil {
		return fmt.Errorf("%w: invalid from address: %v", ErrComposeMessage, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: invalid recipient %q: %v", ErrComposeMessage, to, err)
	}

	allCC := append(append([]string{}, cc...), c.cfg.DefaultCC...)
	if len(allCC) > 0 {
		if err := msg.Cc(allCC...); err != nil {
			return fmt.Errorf("%w: invalid cc list: %v", ErrComposeMessage, err)
		}
	}

	msg.Subject(confirmationSubject)
	msg.SetBodyString(mail.TypeTextPlain, confirmationBody(booking))

	client, err := mail.NewClient(c.cfg.Host,
		mail.WithPort(c.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.cfg.User),
		mail.WithPassword(c.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(c.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("%w: create smtp client: %v", ErrSendFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("SendBookingConfirmation: sent to=%s cc=%d supplier=%s date=%s slot=%s",
		to, len(allCC), booking.SupplierID, booking.Date.Format(domain.DateFormat), booking.Slot)
	return nil
}

// confirmationBody формирует текст письма с подтверждением
func confirmationBody(b domain.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Hola %s,\n\n", b.SupplierID)
	sb.WriteString("Su reserva de entrega ha sido confirmada exitosamente.\n\n")
	sb.WriteString("DETALLES DE LA RESERVA:\n")
	fmt.Fprintf(&sb, "Fecha: %s\n", b.Date.Format(domain.DateFormat))
	fmt.Fprintf(&sb, "Horario: %s\n", b.Slot)
	fmt.Fprintf(&sb, "Número de bultos: %d\n", b.PackageCount)
	fmt.Fprintf(&sb, "Órdenes de compra: %s\n\n", strings.Join(b.PurchaseOrders, ", "))
	sb.WriteString("INSTRUCCIONES:\n")
	sb.WriteString("- Llegue puntualmente en el horario reservado\n")
	sb.WriteString("- Tenga lista la orden de compra y la documentación relevante\n")
	sb.WriteString("- Verifique que los productos y el número de bultos coincidan con la orden de compra\n\n")
	sb.WriteString("Gracias por utilizar nuestro sistema de reservas.\n\n")
	sb.WriteString("Saludos cordiales,\nEquipo de Almacén\n")

	return sb.String()
}
