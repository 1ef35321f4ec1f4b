package mail

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	appconfig "github.com/Cleaning-Company-dex/cleaning-company-web/internal/config"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces"
	"github.com/Cleaning-Company-dex/cleaning-company-web/pkg"

	"github.com/domodwyer/mailyak/v3"
	"go.uber.org/zap"
)

var ErrSMTPNotConfigured = errors.New("smtp not configured")

// Notifier emails a quote confirmation to the customer and an alert to the
// office inbox.
type Notifier struct {
	smtp     appconfig.SMTPConfig
	business appconfig.BusinessConfig
	logger   *zap.Logger
	send     func(*mailyak.MailYak) error
}

var _ interfaces.INotifier = (*Notifier)(nil)

func NewNotifier(smtpCfg appconfig.SMTPConfig, business appconfig.BusinessConfig, logger *zap.Logger) (*Notifier, error) {
	if !smtpCfg.Enabled() {
		return nil, ErrSMTPNotConfigured
	}
	return &Notifier{
		smtp:     smtpCfg,
		business: business,
		logger:   logger,
		send:     func(m *mailyak.MailYak) error { return m.Send() },
	}, nil
}

func (n *Notifier) NotifyQuote(ctx context.Context, q entities.Quote) error {
	var errs []error
	if q.Customer.Email != "" {
		if err := n.send(n.customerMail(q)); err != nil {
			errs = append(errs, fmt.Errorf("customer mail: %w", err))
		}
	}
	if n.smtp.AdminEmail != "" {
		if err := n.send(n.officeMail(q)); err != nil {
			errs = append(errs, fmt.Errorf("office mail: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	n.logger.Info("[quote][mail] notifications sent", zap.String("quote_id", q.ID))
	return nil
}

func (n *Notifier) newMail() *mailyak.MailYak {
	addr := net.JoinHostPort(n.smtp.Host, strconv.Itoa(n.smtp.Port))
	m := mailyak.New(addr, smtp.PlainAuth("", n.smtp.Username, n.smtp.Password, n.smtp.Host))
	m.From(n.smtp.Username)
	m.FromName(n.business.Name)
	return m
}

func (n *Notifier) customerMail(q entities.Quote) *mailyak.MailYak {
	m := n.newMail()
	m.To(q.Customer.Email)
	if n.smtp.AdminEmail != "" {
		m.ReplyTo(n.smtp.AdminEmail)
	}
	m.Subject(fmt.Sprintf("Your cleaning quote %s from %s", q.ID, n.business.Name))

	total := pkg.Money(q.Costs.TotalAmount)
	m.Plain().Set(fmt.Sprintf(
		"Hi %s,\n\nThank you for requesting a quote. Your estimated price is %s.\n"+
			"Quote number: %s\nValid until: %s\n\nWe will contact you shortly. Questions? Call %s.\n\n%s\n",
		q.Customer.Name, total, q.ID, q.ValidUntil.Format("January 2, 2006"), n.business.Phone, n.business.Name))

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p>", html.EscapeString(q.Customer.Name))
	fmt.Fprintf(&b, "<p>Thank you for requesting a quote. Your estimated price is <strong>%s</strong>.</p>", total)
	b.WriteString("<table cellpadding=\"4\">")
	for _, row := range quoteRows(q) {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>", html.EscapeString(row[0]), html.EscapeString(row[1]))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>We will contact you shortly. Questions? Call %s.</p><p>%s</p>",
		html.EscapeString(n.business.Phone), html.EscapeString(n.business.Name))
	m.HTML().Set(b.String())
	return m
}

func (n *Notifier) officeMail(q entities.Quote) *mailyak.MailYak {
	m := n.newMail()
	m.To(n.smtp.AdminEmail)
	if q.Customer.Email != "" {
		m.ReplyTo(q.Customer.Email)
	}
	m.Subject(fmt.Sprintf("New quote request %s - %s", q.ID, pkg.Money(q.Costs.TotalAmount)))

	var b strings.Builder
	b.WriteString("New web quote\n\n")
	for _, row := range quoteRows(q) {
		fmt.Fprintf(&b, "%s: %s\n", row[0], row[1])
	}
	fmt.Fprintf(&b, "Customer: %s <%s> %s\n", q.Customer.Name, q.Customer.Email, q.Customer.Phone)
	fmt.Fprintf(&b, "Address: %s, %s %s %s\n", q.Customer.Address, q.Customer.City, q.Customer.State, q.Customer.Zip)
	if q.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", q.Notes)
	}
	m.Plain().Set(b.String())
	return m
}

func quoteRows(q entities.Quote) [][2]string {
	rows := [][2]string{{"Quote", q.ID}}
	if len(q.Properties) > 0 {
		p := q.Properties[0]
		rows = append(rows,
			[2]string{"Property", p.Name},
			[2]string{"Square feet", strconv.FormatFloat(p.SquareFeet, 'f', -1, 64)},
		)
	}
	rows = append(rows,
		[2]string{"Frequency", q.Frequency},
		[2]string{"Subtotal", pkg.Money(q.Costs.Subtotal)},
		[2]string{"Tax", pkg.Money(q.Costs.TaxAmount)},
		[2]string{"Total", pkg.Money(q.Costs.TotalAmount)},
	)
	return rows
}
