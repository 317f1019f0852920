package identity

import (
	"fmt"
	"net/url"

	"github.com/taskhub/taskhub/pkg/email"
)

func (s *Service) confirmationEmail(user *User, confirmToken string) email.SendEmailParams {
	link := fmt.Sprintf("%s/api/user/ConfirmEmail?userId=%s&token=%s",
		s.publicBaseURL, user.ID, url.QueryEscape(confirmToken))

	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Please confirm your email address by following the link below:</p>
<p><a href="%s">Confirm email address</a></p>
<p>If you did not create this account, you can ignore this message.</p>`,
		user.Username, link)

	return email.SendEmailParams{
		SendTo:   user.Email,
		Subject:  "Confirm your email address",
		BodyHTML: body,
		Tag:      "email-confirmation",
	}
}

func (s *Service) emailChangeEmail(user *User, newEmail, changeToken string) email.SendEmailParams {
	link := fmt.Sprintf("%s/api/user/ConfirmNewEmail?userId=%s&newEmail=%s&token=%s",
		s.publicBaseURL, user.ID, url.QueryEscape(newEmail), url.QueryEscape(changeToken))

	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>A request was made to change your account email to this address. Confirm
the change by following the link below:</p>
<p><a href="%s">Confirm new email address</a></p>
<p>If you did not request this change, you can ignore this message.</p>`,
		user.Username, link)

	// The link goes to the new address: only someone who controls it can
	// complete the change.
	return email.SendEmailParams{
		SendTo:   newEmail,
		Subject:  "Confirm your new email address",
		BodyHTML: body,
		Tag:      "email-change",
	}
}
