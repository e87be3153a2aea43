package mailer

import "strings"

// renderHTML wraps a plain-text body in the styled report shell. Blank
// lines become paragraph breaks, single newlines become line breaks.
func renderHTML(body string) string {
	formatted := strings.TrimSpace(body)
	formatted = strings.ReplaceAll(formatted, "\n\n", "</p><p>")
	formatted = strings.ReplaceAll(formatted, "\n", "<br>")
	if !strings.HasPrefix(formatted, "<p>") {
		formatted = "<p>" + formatted + "</p>"
	}

	var b strings.Builder
	b.WriteString(htmlHead)
	b.WriteString(formatted)
	b.WriteString(htmlFoot)
	return b.String()
}

const htmlHead = `<!DOCTYPE html>
<html>
<head>
<style>
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Helvetica Neue', sans-serif;
    line-height: 1.6;
    color: #333;
    margin: 0;
    padding: 0;
    background-color: white;
  }
  .container {
    max-width: 580px;
    margin: 0 auto;
    padding: 40px 20px;
  }
  .logo {
    margin-bottom: 30px;
    font-size: 16px;
    color: #666;
    text-transform: uppercase;
    letter-spacing: 2px;
  }
  .content {
    padding-bottom: 30px;
  }
  .content p {
    margin: 0 0 1em 0;
  }
  .footer {
    padding-top: 20px;
    border-top: 1px solid #eee;
    font-size: 12px;
    color: #999;
  }
</style>
</head>
<body>
<div class="container">
  <div class="logo">Store Inventory Sync</div>
  <div class="content">
`

const htmlFoot = `
  </div>
  <div class="footer">
    <p>Sent by the automated inventory sync service</p>
  </div>
</div>
</body>
</html>
`
