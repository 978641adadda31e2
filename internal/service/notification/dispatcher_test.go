package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/schedule"
	"github.com/m04kA/SMC-ServiceBooking/pkg/logger"
)

type scriptedSender struct {
	results []error // результат попытки i; после конца списка - успех
	panics  bool
	calls   int
	last    *mailer.Email
}

func (s *scriptedSender) Send(ctx context.Context, email *mailer.Email) error {
	s.calls++
	s.last = email
	if s.panics {
		panic("smtp exploded")
	}
	if s.calls <= len(s.results) {
		return s.results[s.calls-1]
	}
	return nil
}

type recordingSleeper struct {
	waits []time.Duration
	err   error
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return s.err
}

type countingMetrics struct {
	attempts map[bool]int
	outcomes map[bool]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{attempts: map[bool]int{}, outcomes: map[bool]int{}}
}

func (m *countingMetrics) ObserveNotificationAttempt(success bool) { m.attempts[success]++ }
func (m *countingMetrics) ObserveNotification(delivered bool)      { m.outcomes[delivered]++ }

var errDown = errors.New("provider down")

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:         "bk-1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:       "10:00 AM",
		Customer:   domain.Customer{Name: "Budi <Santoso>", Email: "budi@example.com"},
		TotalPrice: 148,
	}
}

func newDispatcher(t *testing.T, sender Sender, sleeper Sleeper, metrics MetricsRecorder) *Dispatcher {
	t.Helper()
	policy, err := schedule.NewPolicy(nil)
	require.NoError(t, err)
	return NewDispatcher(sender, sleeper, policy, metrics, Config{}, logger.NewNop())
}

func TestDispatcher_AlwaysFailingSenderRetriesThreeTimes(t *testing.T) {
	sender := &scriptedSender{results: []error{errDown, errDown, errDown}}
	sleeper := &recordingSleeper{}
	metrics := newCountingMetrics()
	d := newDispatcher(t, sender, sleeper, metrics)

	ok := d.SendConfirmation(context.Background(), testBooking(), []string{"Windows Installation"})

	assert.False(t, ok)
	assert.Equal(t, 3, sender.calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, sleeper.waits)
	assert.Equal(t, 3, metrics.attempts[false])
	assert.Equal(t, 1, metrics.outcomes[false])
}

func TestDispatcher_SucceedsOnRetry(t *testing.T) {
	sender := &scriptedSender{results: []error{errDown}}
	sleeper := &recordingSleeper{}
	metrics := newCountingMetrics()
	d := newDispatcher(t, sender, sleeper, metrics)

	ok := d.SendConfirmation(context.Background(), testBooking(), []string{"Windows Installation"})

	assert.True(t, ok)
	assert.Equal(t, 2, sender.calls)
	assert.Equal(t, []time.Duration{2 * time.Second}, sleeper.waits)
	assert.Equal(t, 1, metrics.outcomes[true])
}

func TestDispatcher_FirstAttemptSuccessDoesNotWait(t *testing.T) {
	sender := &scriptedSender{}
	sleeper := &recordingSleeper{}
	d := newDispatcher(t, sender, sleeper, newCountingMetrics())

	assert.True(t, d.SendConfirmation(context.Background(), testBooking(), nil))
	assert.Equal(t, 1, sender.calls)
	assert.Empty(t, sleeper.waits)
}

func TestDispatcher_PanickingSenderIsContained(t *testing.T) {
	sender := &scriptedSender{panics: true}
	d := newDispatcher(t, sender, &recordingSleeper{}, newCountingMetrics())

	var ok bool
	assert.NotPanics(t, func() {
		ok = d.SendConfirmation(context.Background(), testBooking(), nil)
	})
	assert.False(t, ok)
	assert.Equal(t, 3, sender.calls)
}

func TestDispatcher_CancelledWhileBackingOff(t *testing.T) {
	sender := &scriptedSender{results: []error{errDown, errDown, errDown}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := newDispatcher(t, sender, RealSleeper{}, newCountingMetrics())

	ok := d.SendConfirmation(ctx, testBooking(), nil)

	assert.False(t, ok)
	assert.Equal(t, 1, sender.calls)
}

func TestDispatcher_BackoffUsesConfiguredUnit(t *testing.T) {
	policy, err := schedule.NewPolicy(nil)
	require.NoError(t, err)
	d := NewDispatcher(&scriptedSender{}, nil, policy, newCountingMetrics(), Config{BackoffUnit: time.Millisecond}, logger.NewNop())

	assert.Equal(t, 2*time.Millisecond, d.Backoff(1))
	assert.Equal(t, 4*time.Millisecond, d.Backoff(2))
	assert.Equal(t, 8*time.Millisecond, d.Backoff(3))
}

func TestDispatcher_RendersConfirmation(t *testing.T) {
	sender := &scriptedSender{}
	d := newDispatcher(t, sender, &recordingSleeper{}, newCountingMetrics())

	require.True(t, d.SendConfirmation(context.Background(), testBooking(), []string{"Windows Installation", "Antivirus & Security"}))

	email := sender.last
	require.NotNil(t, email)
	assert.Equal(t, "budi@example.com", email.To)
	assert.Equal(t, "Booking Confirmation - bk-1", email.Subject)
	assert.Contains(t, email.HTML, "Monday, 10 March 2025")
	assert.Contains(t, email.HTML, "10:00 AM WIB")
	assert.Contains(t, email.HTML, "Windows Installation")
	assert.Contains(t, email.HTML, "Antivirus &amp; Security")
	assert.Contains(t, email.HTML, "Total Price: $148")
	assert.Contains(t, email.HTML, "Budi &lt;Santoso&gt;")
	assert.Contains(t, email.HTML, DefaultBusinessName)
}

func TestDeliveryBudget(t *testing.T) {
	assert.Equal(t, 36*time.Second, DeliveryBudget(10*time.Second, time.Second))
	assert.Equal(t, 21*time.Second, DeliveryBudget(5*time.Second, time.Second))
	assert.Equal(t, 6*time.Millisecond, DeliveryBudget(0, time.Millisecond))
}
