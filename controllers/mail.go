package controllers

import (
	"time"

	"github.com/seoulglow/seoulglow-api/utils"
)

// Mail is the process-wide outgoing email queue, started from main. Nil in
// handler tests that never send mail.
var Mail *utils.MailQueue

func StartMailQueue() {
	Mail = utils.NewMailQueue(30 * time.Second)
}

func enqueueMail(to, subject string, data utils.EmailData, templatePath string) {
	if Mail == nil {
		return
	}
	Mail.Enqueue(to, subject, data, templatePath)
}
