package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

func SendToEmail(to, subject, body string) bool {
	port, err := strconv.Atoi(os.Getenv("SMTP.PORT"))
	if err != nil {
		port = 587
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", os.Getenv("SMTP.SENDER"))
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(
		os.Getenv("SMTP.HOST"),
		port,
		os.Getenv("SMTP.EMAIL"),
		os.Getenv("SMTP.PASSWORD"),
	)

	if err := dialer.DialAndSend(mailer); err != nil {
		log.Println("unable to send email: " + err.Error())
		return false
	}

	return true
}
