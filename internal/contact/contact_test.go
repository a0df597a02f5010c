package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adielbeauty/storefront/internal/contact/domain"
	"github.com/adielbeauty/storefront/pkg/breaker"
	"github.com/adielbeauty/storefront/pkg/config"
)

type memorySubscribers struct {
	mu     sync.Mutex
	emails map[string]bool
}

func (m *memorySubscribers) Subscribe(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emails == nil {
		m.emails = map[string]bool{}
	}
	if m.emails[email] {
		return false, nil
	}
	m.emails[email] = true
	return true, nil
}

type recordingMailer struct {
	params map[string]string
	err    error
}

func (m *recordingMailer) Send(_ context.Context, params map[string]string) error {
	m.params = params
	return m.err
}

var validForm = domain.ContactForm{
	FirstName: "Chipo",
	LastName:  "Ncube",
	Email:     "chipo@example.com",
	Phone:     "+263 77 123 4567",
	Message:   "Do you deliver to Bulawayo?",
}

func TestRelaySend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	relay := NewRelay(config.EmailJSConfig{
		Endpoint:   srv.URL,
		ServiceID:  "service_1",
		TemplateID: "template_1",
		PublicKey:  "public_1",
	}, srv.Client())

	err := relay.Send(context.Background(), map[string]string{"message": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "service_1", got.ServiceID)
	assert.Equal(t, "template_1", got.TemplateID)
	assert.Equal(t, "public_1", got.UserID)
	assert.Equal(t, "hello", got.TemplateParams["message"])
}

func TestRelayNon200IsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The Public Key is invalid"))
	}))
	defer srv.Close()

	relay := NewRelay(config.EmailJSConfig{Endpoint: srv.URL}, srv.Client())
	err := relay.Send(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRelayFailed)
	assert.Contains(t, err.Error(), "400")
}

func TestSubmitContactForm(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(mailer, &memorySubscribers{}, Recipient{Name: "Adiel Beauty", Email: "shop@example.com"})

	require.NoError(t, svc.SubmitContactForm(context.Background(), validForm))
	assert.Equal(t, "Chipo Ncube", mailer.params["from_name"])
	assert.Equal(t, "chipo@example.com", mailer.params["from_email"])
	assert.Equal(t, "+263 77 123 4567", mailer.params["from_phone"])
	assert.Equal(t, "Adiel Beauty", mailer.params["to_name"])
	assert.Equal(t, "shop@example.com", mailer.params["to_email"])
}

func TestSubmitContactFormRequiresEveryField(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(mailer, &memorySubscribers{}, Recipient{})

	blank := validForm
	blank.Phone = "   "
	assert.ErrorIs(t, svc.SubmitContactForm(context.Background(), blank), domain.ErrIncompleteForm)

	bad := validForm
	bad.Email = "chipo"
	assert.ErrorIs(t, svc.SubmitContactForm(context.Background(), bad), domain.ErrInvalidEmail)

	assert.Nil(t, mailer.params)
}

func TestSubmitContactFormRelayFailure(t *testing.T) {
	svc := NewService(&recordingMailer{err: domain.ErrRelayFailed}, &memorySubscribers{}, Recipient{})
	assert.ErrorIs(t, svc.SubmitContactForm(context.Background(), validForm), domain.ErrRelayFailed)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	subs := &memorySubscribers{}
	svc := NewService(&recordingMailer{}, subs, Recipient{})
	ctx := context.Background()

	require.NoError(t, svc.Subscribe(ctx, "Farai@Example.com"))
	require.NoError(t, svc.Subscribe(ctx, "farai@example.com"))
	assert.Len(t, subs.emails, 1)

	assert.ErrorIs(t, svc.Subscribe(ctx, "nope"), domain.ErrInvalidEmail)
}

func TestGuardedMailerFailsFast(t *testing.T) {
	relay := &recordingMailer{err: domain.ErrRelayFailed}
	svc := NewService(NewGuardedMailer(relay, breaker.New("emailjs-test", 2, time.Minute)), &memorySubscribers{}, Recipient{})

	require.ErrorIs(t, svc.SubmitContactForm(context.Background(), validForm), domain.ErrRelayFailed)
	require.ErrorIs(t, svc.SubmitContactForm(context.Background(), validForm), domain.ErrRelayFailed)

	relay.params = nil
	err := svc.SubmitContactForm(context.Background(), validForm)
	assert.ErrorIs(t, err, breaker.ErrOpen)
	assert.Nil(t, relay.params)
}
