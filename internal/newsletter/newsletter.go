// Package newsletter validates and acknowledges bulletin signups. Addresses
// are logged masked and never stored.
package newsletter

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/vittin/site/pkg/forms"
	"github.com/vittin/site/pkg/i18n"
	"github.com/vittin/site/pkg/logging"
	"github.com/vittin/site/pkg/security"
)

// MaxEmailLength is the longest address accepted (RFC 5321 path limit).
const MaxEmailLength = 254

// FieldEmail is the form field carrying the address.
const FieldEmail = "email"

// maxFormBytes bounds the request body.
const maxFormBytes = 4 << 10

// Signup is a validated subscription request.
type Signup struct {
	Email string
}

// NewForm builds the signup form with messages from t.
func NewForm(t *i18n.Translator) *forms.Form {
	return forms.New(forms.Field{
		Name: FieldEmail,
		Validators: []forms.Validator{
			forms.Required(t.T("newsletter.required")),
			forms.MaxLength(MaxEmailLength, t.T("newsletter.too_long")),
			forms.Email(t.T("newsletter.invalid")),
		},
	})
}

// Parse validates submitted values. The error is nil or a forms.Errors.
func Parse(t *i18n.Translator, values map[string][]string) (Signup, error) {
	data, err := NewForm(t).Bind(values)
	if err != nil {
		return Signup{}, err
	}
	return Signup{Email: data[FieldEmail]}, nil
}

type response struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Handler accepts POSTed signups. The translator comes from the request
// context, falling back to fallback.
func Handler(fallback *i18n.Translator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logging.L(r.Context())

		t := i18n.TranslatorFromContext(r.Context())
		if t == nil {
			t = fallback
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			writeResult(w, r, http.StatusBadRequest, response{Error: "malformed form"})
			return
		}

		signup, err := Parse(t, r.PostForm)
		if err != nil {
			var fieldErrs forms.Errors
			msg := err.Error()
			if errors.As(err, &fieldErrs) {
				msg = fieldErrs[FieldEmail]
			}
			log.Debug("newsletter signup rejected", logging.String("reason", msg))
			writeResult(w, r, http.StatusUnprocessableEntity, response{Error: msg, Field: FieldEmail})
			return
		}

		log.Info("newsletter signup", logging.String("email", security.MaskEmail(signup.Email)))
		writeResult(w, r, http.StatusOK, response{Status: "subscribed", Message: t.T("newsletter.ok")})
	})
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// writeResult answers with JSON or with an HTML status fragment.
func writeResult(w http.ResponseWriter, r *http.Request, status int, resp response) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if resp.Error != "" {
		fmt.Fprintf(w, `<p class="form-status error" role="alert">%s</p>`, html.EscapeString(resp.Error))
		return
	}
	fmt.Fprintf(w, `<p class="form-status" role="status">%s</p>`, html.EscapeString(resp.Message))
}
