// internals/services/mailer/mailer.go
package mailer

// Mailer envia notificações transacionais (confirmação de inscrição etc.).
// Falha de envio nunca derruba a operação que o disparou: quem chama loga
// e segue.
type Mailer interface {
	Send(toName, toEmail, subject, body string) error
}

// New escolhe a implementação: Sendgrid quando há API key, console caso
// contrário (dev local).
func New(sendgridKey, fromName, fromEmail string) Mailer {
	if sendgridKey != "" {
		return NewSendgridMailer(sendgridKey, fromName, fromEmail)
	}
	return NewConsoleMailer()
}
