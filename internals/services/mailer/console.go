package mailer

import "log"

// consoleMailer imprime o e-mail no log (ambiente de desenvolvimento)
type consoleMailer struct{}

func NewConsoleMailer() Mailer {
	return &consoleMailer{}
}

func (m *consoleMailer) Send(toName, toEmail, subject, body string) error {
	log.Printf("[MAIL] to=%s <%s> subject=%q\n%s", toName, toEmail, subject, body)
	return nil
}
