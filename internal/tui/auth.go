package tui

// authMode selects which form the auth screen shows.
type authMode int

const (
	authLogin authMode = iota
	authRegister
)

// authModel is the login/register screen. It only collects input; the
// root model calls the auth service on submit.
type authModel struct {
	mode authMode
	form form
}

func newAuthModel() authModel {
	return authModel{mode: authLogin, form: newLoginForm()}
}

func newLoginForm() form {
	return newForm("Entrar",
		formField{label: "Email", placeholder: "voce@empresa.com"},
		formField{label: "Senha", secret: true},
	)
}

func newRegisterForm() form {
	return newForm("Criar conta",
		formField{label: "Nome", placeholder: "Maria Silva"},
		formField{label: "Email", placeholder: "voce@empresa.com"},
		formField{label: "Senha", secret: true},
		formField{label: "Confirmar senha", secret: true},
	)
}

// toggle switches between the login and register forms, dropping any
// half-typed input.
func (a *authModel) toggle() {
	if a.mode == authLogin {
		a.mode = authRegister
		a.form = newRegisterForm()
	} else {
		a.mode = authLogin
		a.form = newLoginForm()
	}
}
