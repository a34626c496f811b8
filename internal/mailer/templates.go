package mailer

import "html/template"

var verificationTmpl = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif;">
    <h2>Verify your email</h2>
    <p>Enter this code to verify your email address:</p>
    <p style="font-size: 24px; letter-spacing: 4px;"><strong>{{.Code}}</strong></p>
    <p>The code expires in 24 hours.</p>
  </body>
</html>`))

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif;">
    <h2>Welcome, {{.Name}}!</h2>
    <p>Your email has been verified. You can now use the Teacher Assistant Application System.</p>
  </body>
</html>`))

var resetTmpl = template.Must(template.New("reset").Parse(
	`Click <a href="{{.URL}}">here</a> to reset your password`))

var resetConfirmationBody = `Your password has been reset successfully`
