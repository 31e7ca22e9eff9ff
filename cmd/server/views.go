package main

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/mohitbakre/polyglot/session"
)

// authView carries the per-request rendering data for the login and
// registration forms. Errors and notices are transient; they are never
// stored in session state.
type authView struct {
	LoginEmail    string
	LoginError    string
	RegisterEmail string
	RegisterError string
	Notice        string
}

// translatorView carries the rendering data for the authenticated view.
type translatorView struct {
	Email      string
	Languages  []string
	Source     string
	Target     string
	Transcript []session.ChatTurn
}

type viewRenderer struct {
	auth       *template.Template
	translator *template.Template
}

func newViewRenderer() *viewRenderer {
	return &viewRenderer{
		auth:       template.Must(template.New("auth").Parse(authTemplate)),
		translator: template.Must(template.New("translator").Parse(translatorTemplate)),
	}
}

func (v *viewRenderer) renderAuth(w http.ResponseWriter, logger *zap.SugaredLogger, view authView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.auth.Execute(w, view); err != nil {
		logger.Errorw("failed to render auth view", "error", err)
	}
}

func (v *viewRenderer) renderTranslator(w http.ResponseWriter, logger *zap.SugaredLogger, view translatorView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.translator.Execute(w, view); err != nil {
		logger.Errorw("failed to render translator view", "error", err)
	}
}

const authTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AI Language Translator</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; }
form { border: 1px solid #ccc; border-radius: 6px; padding: 1rem; margin-bottom: 1.5rem; }
label { display: block; margin-top: .5rem; }
input { width: 100%; padding: .4rem; margin-top: .2rem; box-sizing: border-box; }
button { margin-top: .8rem; padding: .4rem 1.2rem; }
.error { color: #b00020; margin-top: .5rem; }
.notice { color: #1b5e20; margin-top: .5rem; }
</style>
</head>
<body>
<h1>Welcome to the AI Language Translator!</h1>
<p>Please Login or Register to continue.</p>

<form method="POST" action="/login">
<h2>Login</h2>
<label>Email<input type="email" name="email" value="{{.LoginEmail}}"></label>
<label>Password<input type="password" name="password"></label>
<button type="submit">Login</button>
{{if .LoginError}}<p class="error">{{.LoginError}}</p>{{end}}
</form>

<form method="POST" action="/register">
<h2>Register</h2>
<label>Email<input type="email" name="email" value="{{.RegisterEmail}}"></label>
<label>Password<input type="password" name="password"></label>
<label>Confirm Password<input type="password" name="confirm"></label>
<button type="submit">Register</button>
{{if .RegisterError}}<p class="error">{{.RegisterError}}</p>{{end}}
{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
</form>
</body>
</html>
`

const translatorTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AI Language Translator</title>
<style>
body { font-family: sans-serif; max-width: 44rem; margin: 2rem auto; padding: 0 1rem; }
header { display: flex; justify-content: space-between; align-items: baseline; }
.turn { border-radius: 6px; padding: .6rem .8rem; margin: .5rem 0; }
.turn.user { background: #e3f2fd; }
.turn.assistant { background: #f1f1f1; }
.langs { font-size: .85rem; color: #555; }
select, input[type=text] { padding: .4rem; }
.controls { margin-top: 1rem; }
button { padding: .4rem 1rem; }
footer { margin-top: 2rem; font-size: .8rem; color: #777; }
</style>
</head>
<body>
<header>
<h1>&#128483;&#65039; AI Language Translator</h1>
<form method="POST" action="/logout"><button type="submit" title="Log out of your account">Logout</button></form>
</header>
<p>Welcome, {{.Email}}! Powered by Google Gemini API</p>

{{range .Transcript}}
<div class="turn {{.Role}}">
{{if and (eq .Role "user") .SourceLang}}<div class="langs"><strong>From {{.SourceLang}} to {{.TargetLang}}</strong></div>{{end}}
<div>{{.Content}}</div>
</div>
{{end}}

<form method="POST" action="/translate" onsubmit="this.querySelector('button').disabled=true;this.querySelector('button').textContent='Translating…';">
<label>Source Language
<select name="source">{{$source := .Source}}{{range .Languages}}<option value="{{.}}"{{if eq . $source}} selected{{end}}>{{.}}</option>{{end}}</select>
</label>
<label>Target Language
<select name="target">{{$target := .Target}}{{range .Languages}}<option value="{{.}}"{{if eq . $target}} selected{{end}}>{{.}}</option>{{end}}</select>
</label>
<label>Type text to translate&hellip;
<input type="text" name="text" autofocus>
</label>
<button type="submit">Translate</button>
</form>

<div class="controls">
<form method="POST" action="/clear"><button type="submit" title="Clear all messages from the conversation history">Clear Chat</button></form>
</div>

<footer>Disclaimer: Translations are generated by AI and may not always be perfectly accurate. This is a demo app.</footer>
</body>
</html>
`
